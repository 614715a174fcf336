package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	Form(c echo.Context) error
	Report(c echo.Context) error
	Generate(c echo.Context) error
	Text(c echo.Context) error
	Export(c echo.Context) error
}
