package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/globalstreet/postrack/internal/client/ops"
	"github.com/globalstreet/postrack/internal/models"
)

func (c *Cli) runApprove(ctx context.Context, args []string) error {
	return c.decideRequest(ctx, args, true)
}

func (c *Cli) runReject(ctx context.Context, args []string) error {
	return c.decideRequest(ctx, args, false)
}

func (c *Cli) decideRequest(ctx context.Context, args []string, approve bool) error {
	verb := "approve"
	if !approve {
		verb = "reject"
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: postrack %s <machine|shop|rename|registration> <request-id>", verb)
	}
	kind, requestID := args[0], args[1]

	sess, err := c.session(ctx)
	if err != nil {
		return err
	}
	if sess.Role != string(models.RoleAdmin) {
		return fmt.Errorf("only admins can %s requests", verb)
	}

	st, online := c.fetchState(ctx, sess.AccessToken)
	if !online {
		c.io.Println("Server unreachable; the decision will be queued and sent later.")
	}

	var sent bool
	switch kind {
	case "machine":
		if approve {
			sent, err = c.opsService.ApproveMachineRequest(ctx, sess.AccessToken, st, requestID)
		} else {
			sent, err = c.opsService.RejectMachineRequest(ctx, sess.AccessToken, st, requestID)
		}
	case "shop":
		if approve {
			sent, err = c.opsService.ApproveShopRequest(ctx, sess.AccessToken, st, requestID)
		} else {
			sent, err = c.opsService.RejectShopRequest(ctx, sess.AccessToken, st, requestID)
		}
	case "rename":
		if approve {
			sent, err = c.opsService.ApproveRenameRequest(ctx, sess.AccessToken, st, requestID)
		} else {
			sent, err = c.opsService.RejectRenameRequest(ctx, sess.AccessToken, st, requestID)
		}
	case "registration":
		if approve {
			var role models.UserRole
			role, err = c.readRegistrationRole()
			if err != nil {
				return err
			}
			sent, err = c.opsService.ApproveRegistration(ctx, sess.AccessToken, st, requestID, role)
		} else {
			sent, err = c.opsService.RejectRegistration(ctx, sess.AccessToken, st, requestID)
		}
	default:
		return fmt.Errorf("unknown request kind: %s. Use: machine, shop, rename or registration", kind)
	}

	if err != nil {
		if errors.Is(err, ops.ErrNotFound) {
			return fmt.Errorf("%s request not found with ID: %s", kind, requestID)
		}
		if errors.Is(err, ops.ErrNotPending) {
			return fmt.Errorf("%s request %s has already been decided", kind, requestID)
		}
		return err
	}

	c.io.Println()
	if approve {
		c.io.Printf("Request %s approved.\n", requestID)
	} else {
		c.io.Printf("Request %s rejected.\n", requestID)
	}
	if !sent {
		c.io.Println("The decision is queued and will sync when the server is reachable.")
	}
	return nil
}

// readRegistrationRole asks which role the new account gets.
func (c *Cli) readRegistrationRole() (models.UserRole, error) {
	input, err := c.io.ReadInput("Role for the new account (shop_user/partner) [shop_user]: ")
	if err != nil {
		return "", fmt.Errorf("failed to read role: %w", err)
	}
	if input == "" {
		return models.RoleShopUser, nil
	}
	switch strings.ToLower(input) {
	case "shop_user":
		return models.RoleShopUser, nil
	case "partner":
		return models.RolePartner, nil
	default:
		return "", fmt.Errorf("unknown role: %s", input)
	}
}
