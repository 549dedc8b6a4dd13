package echoapi

import "github.com/labstack/echo/v4"

// limitConcurrency answers 503 while `max` requests are already being served.
func limitConcurrency(max int) echo.MiddlewareFunc {
	slots := make(chan struct{}, max)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			select {
			case slots <- struct{}{}:
				defer func() { <-slots }()
				return next(ctx)
			default:
				return errHttpServiceUnavailable
			}
		}
	}
}
