package adaptor

import (
	"class-hub/biz/application/dto/hub"
	"class-hub/biz/infrastructure/util"
	"class-hub/biz/infrastructure/util/log"
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PostProcess 统一出口: 成功时返回业务响应, 失败时把Errno映射为HTTP状态码和错误信息
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)

	if err == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	s, _ := status.FromError(err)
	c.JSON(httpStatus(s.Code()), &hub.Response{
		Code: int64(s.Code()),
		Msg:  s.Message(),
	})
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.InvalidArgument, codes.AlreadyExists:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
