package check_out

import (
	"context"

	checkOut "github.com/m04kA/SMC-StayService/internal/usecase/check_out"
)

type CheckOutUseCase interface {
	Execute(ctx context.Context, req *checkOut.Request) (*checkOut.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
