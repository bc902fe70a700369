package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gmarcondes/prioriza/core"
	"github.com/gmarcondes/prioriza/core/order"
)

// ExportFilename is the name the export download is served under.
const ExportFilename = "ordem_producao.pdf"

type orderApi struct {
	conf     *core.Config
	svc      *order.Service
	exporter order.Exporter
	validate *validator.Validate
}

func registerOrderAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := orderApi{
		conf:     deps.Conf,
		svc:      deps.OrderSvc,
		exporter: deps.Exporter,
		validate: deps.Validate,
	}

	// everything behind the access gate: no token, no entry
	og := g.Group("/pedidos", jwt)
	og.POST("", api.create)
	og.GET("/dashboard", api.dashboard)
	og.POST("/:id/concluir", api.complete)
	og.GET("/export", api.export)
}

// Handlers

func (api *orderApi) create(ctx echo.Context) error {
	var data order.NewOrder
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewOrder")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	o, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating order")
	}

	return ctx.JSON(http.StatusCreated, o)
}

func (api *orderApi) dashboard(ctx echo.Context) error {
	dash, err := api.dashboardView()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dash)
}

// complete marks the order as completed, then answers with the view rebuilt
// from the mutated store (full re-render, not incremental). Completing twice
// is a no-op.
func (api *orderApi) complete(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	if _, err := api.svc.Complete(id); err != nil {
		if errors.Cause(err) == order.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "completing order")
	}

	dash, err := api.dashboardView()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dash)
}

func (api *orderApi) export(ctx echo.Context) error {
	dash, err := api.dashboardView()
	if err != nil {
		return err
	}

	// export failures are recoverable: reported, never terminate the session
	doc, err := api.exporter.OpenOrders(dash.Rows)
	if err != nil {
		return errors.Wrap(err, "exporting open orders")
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+ExportFilename+`"`)
	return ctx.Blob(http.StatusOK, "application/pdf", doc.Bytes())
}

// dashboardView rebuilds the whole view from a fresh store snapshot.
func (api *orderApi) dashboardView() (order.Dashboard, error) {
	open, err := api.svc.ListOpen()
	if err != nil {
		return order.Dashboard{}, errors.Wrap(err, "listing open orders")
	}
	today := order.DateOf(NowFunc())
	return order.BuildDashboard(open, today, api.conf.Dashboard.DueSoonWindowDays), nil
}
