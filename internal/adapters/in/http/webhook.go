package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type textCommandKind int

const (
	textHelp textCommandKind = iota
	textNewOrder
	textUpdateOrder
	textStatus
)

// textCommand is one parsed line of the text channel.
type textCommand struct {
	kind    textCommandKind
	orderID string
	client  string
	product string
	step    int
}

var (
	newOrderPattern    = regexp.MustCompile(`(?i)^new order:\s*#([^,\s]+)\s*,\s*client:\s*(.+?)\s*,\s*product:\s*(.+?)\s*$`)
	updateOrderPattern = regexp.MustCompile(`(?i)^update order:\s*#([^,\s]+)\s*,\s*step:\s*(\d+)\s*$`)
	statusPattern      = regexp.MustCompile(`(?i)^status\s*#(\S+)\s*$`)
)

const helpReply = "ℹ️ Available commands:\n" +
	"New Order: #<id>, Client: <name>, Product: <item>\n" +
	"Update Order: #<id>, Step: <n>\n" +
	"Status #<id>"

// parseTextCommand matches body against the three fixed patterns. Anything
// else is a help request.
func parseTextCommand(body string) textCommand {
	body = strings.TrimSpace(body)

	if m := newOrderPattern.FindStringSubmatch(body); m != nil {
		return textCommand{kind: textNewOrder, orderID: m[1], client: m[2], product: m[3]}
	}
	if m := updateOrderPattern.FindStringSubmatch(body); m != nil {
		step, err := strconv.Atoi(m[2])
		if err != nil {
			return textCommand{kind: textHelp}
		}
		return textCommand{kind: textUpdateOrder, orderID: m[1], step: step}
	}
	if m := statusPattern.FindStringSubmatch(body); m != nil {
		return textCommand{kind: textStatus, orderID: m[1]}
	}
	return textCommand{kind: textHelp}
}

// Webhook godoc
//
//	@Summary		Text command channel
//	@Description	Provider form post with Body and From. The reply is sent back to From.
//	@Tags			webhook
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			Body	formData	string	true	"message text"
//	@Param			From	formData	string	true	"sender address"
//	@Success		200		{object}	WebhookEnvelope
//	@Failure		400		{object}	ErrorResponse
//	@Router			/webhook [post]
func (s *Server) Webhook(c echo.Context) error {
	body := c.FormValue("Body")
	from := strings.TrimSpace(c.FormValue("From"))
	if from == "" {
		return s.writeError(c, errs.NewValueIsRequiredError("From"))
	}

	ctx := c.Request().Context()
	s.logger.Info("text command received", zap.String("from", from), zap.String("body", body))

	reply := s.runTextCommand(ctx, parseTextCommand(body))

	delivered := true
	if _, err := s.notifier.Send(ctx, from, reply); err != nil {
		s.logger.Warn("text command reply not delivered", zap.String("to", from), zap.Error(err))
		delivered = false
	}

	return c.JSON(http.StatusOK, WebhookEnvelope{Success: true, Reply: reply, Delivered: delivered})
}

func (s *Server) runTextCommand(ctx context.Context, cmd textCommand) string {
	switch cmd.kind {
	case textNewOrder:
		return s.textNewOrder(ctx, cmd)
	case textUpdateOrder:
		return s.textUpdateOrder(ctx, cmd)
	case textStatus:
		return s.textStatus(ctx, cmd)
	default:
		return helpReply
	}
}

func (s *Server) textNewOrder(ctx context.Context, cmd textCommand) string {
	create, err := commands.NewCreateOrderCommand(cmd.orderID, order.Details{
		CompanyName: cmd.client,
		Product:     cmd.product,
	})
	if err != nil {
		return s.textError(cmd.orderID, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx, create)
	if err != nil {
		return s.textError(cmd.orderID, err)
	}

	return fmt.Sprintf("✅ Order #%s created\nClient: %s\nProduct: %s\nStage: %d/%d - %s",
		created.OrderNumber(), created.CompanyName(), created.Product(),
		created.CurrentStage(), order.FinalStage, created.CurrentStage().Name())
}

func (s *Server) textUpdateOrder(ctx context.Context, cmd textCommand) string {
	stage := order.Stage(cmd.step)
	update, err := commands.NewUpdateOrderCommand(cmd.orderID, order.Patch{CurrentStage: &stage})
	if err != nil {
		return s.textError(cmd.orderID, err)
	}

	result, err := s.handlers.UpdateOrder.Handle(ctx, update)
	if err != nil {
		return s.textError(cmd.orderID, err)
	}

	o := result.Order
	return fmt.Sprintf("🔄 Order #%s updated\nStage: %d/%d - %s\nStatus: %s",
		o.OrderNumber(), o.CurrentStage(), order.FinalStage, o.CurrentStage().Name(), o.Status())
}

func (s *Server) textStatus(ctx context.Context, cmd textCommand) string {
	query, err := queries.NewGetOrderQuery(cmd.orderID)
	if err != nil {
		return s.textError(cmd.orderID, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx, query)
	if err != nil {
		return s.textError(cmd.orderID, err)
	}

	return fmt.Sprintf("📦 Order #%s\nClient: %s\nProduct: %s\nStage: %d/%d - %s\nStatus: %s\nLast updated: %s",
		o.OrderNumber(), o.CompanyName(), o.Product(),
		o.CurrentStage(), order.FinalStage, o.CurrentStage().Name(), o.Status(), o.LastUpdated())
}

func (s *Server) textError(orderID string, err error) string {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return fmt.Sprintf("❌ Order #%s not found", orderID)
	case errs.IsValidation(err):
		return "❌ " + err.Error()
	default:
		s.logger.Error("text command failed", zap.String("order_id", orderID), zap.Error(err))
		return "❌ Something went wrong, please try again later"
	}
}
