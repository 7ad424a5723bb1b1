package main

import (
	"class-hub/biz/adaptor/controller"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizedRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", controller.Ping)

	apiV1 := r.Group("/api/v1")
	{
		class := apiV1.Group("/class")
		{
			class.POST("/create", controller.CreateClass)
			class.POST("/list", controller.ListClasses)
			class.GET("/detail", controller.GetClass)
			class.POST("/members", controller.GetClassMembers)
			class.POST("/join", controller.JoinClass)
			class.POST("/leave", controller.LeaveClass)
			class.POST("/delete", controller.DeleteClass)

			invite := class.Group("/invite")
			invite.POST("/generate", controller.GenerateInvite)
			invite.POST("/revoke", controller.RevokeInvite)

			member := class.Group("/member")
			member.POST("/remove", controller.RemoveMember)
			member.POST("/role", controller.ChangeRole)
		}

		channel := apiV1.Group("/channel")
		{
			channel.GET("/list", controller.ListChannels)
			channel.POST("/create", controller.CreateChannel)
		}

		message := apiV1.Group("/message")
		{
			message.POST("/send", controller.PostMessage)
			message.POST("/list", controller.ListMessages)
			message.POST("/edit", controller.EditMessage)
			message.POST("/delete", controller.DeleteMessage)
		}
	}
}
