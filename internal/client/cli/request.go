package cli

import (
	"context"
	"fmt"

	"github.com/globalstreet/postrack/internal/models"
)

func (c *Cli) runRequest(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing request kind. Usage: postrack request <machine|shop|rename|registration>")
	}
	switch args[0] {
	case "machine":
		return c.runRequestMachine(ctx)
	case "shop":
		return c.runRequestShop(ctx)
	case "rename":
		return c.runRequestRename(ctx)
	case "registration":
		return c.runRequestRegistration(ctx)
	default:
		return fmt.Errorf("unknown request kind: %s. Use: machine, shop, rename or registration", args[0])
	}
}

func (c *Cli) runRequestMachine(ctx context.Context) error {
	sess, err := c.session(ctx)
	if err != nil {
		return err
	}
	st, _ := c.fetchState(ctx, sess.AccessToken)

	c.io.Println("=== Request New Terminal ===")
	c.io.Println()

	shop, err := c.pickShop(st.ShopsFor(sess.Username, models.UserRole(sess.Role)))
	if err != nil {
		return err
	}
	tid, err := c.readRequired("Terminal ID (TID): ")
	if err != nil {
		return err
	}
	tripleCode, err := c.io.ReadInput("Triple code (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read triple code: %w", err)
	}
	machineType, err := c.io.ReadInput("Type (standard/hala) [standard]: ")
	if err != nil {
		return fmt.Errorf("failed to read type: %w", err)
	}
	if machineType == "" {
		machineType = "standard"
	}
	if machineType != "standard" && machineType != "hala" {
		return fmt.Errorf("unknown terminal type: %s", machineType)
	}

	req := models.MachineRequest{
		ShopID:     shop.ID,
		ShopName:   shop.Name,
		TID:        tid,
		TripleCode: tripleCode,
		Type:       machineType,
		Username:   sess.Username,
	}
	sent, err := c.opsService.RequestMachine(ctx, sess.AccessToken, req)
	if err != nil {
		return err
	}

	c.printRequestOutcome(sent)
	return nil
}

func (c *Cli) runRequestShop(ctx context.Context) error {
	sess, err := c.session(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Request New Shop ===")
	c.io.Println()

	name, err := c.readRequired("Shop name: ")
	if err != nil {
		return err
	}
	location, err := c.readRequired("Location: ")
	if err != nil {
		return err
	}
	category, err := c.io.ReadInput("Category (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read category: %w", err)
	}
	partner, err := c.io.ReadInput("Partner name (empty for directly operated): ")
	if err != nil {
		return fmt.Errorf("failed to read partner: %w", err)
	}
	initialTID, err := c.io.ReadInput("Initial TID (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read TID: %w", err)
	}
	initialTriple := ""
	if initialTID != "" {
		initialTriple, err = c.io.ReadInput("Initial triple code (optional): ")
		if err != nil {
			return fmt.Errorf("failed to read triple code: %w", err)
		}
	}

	req := models.ShopRequest{
		UserID:            sess.UserID,
		Username:          sess.Username,
		RequestedName:     name,
		RequestedLocation: location,
		RequestedCategory: category,
		PartnerName:       partner,
		IsDirect:          partner == "",
		InitialTID:        initialTID,
		InitialTripleCode: initialTriple,
	}
	sent, err := c.opsService.RequestShop(ctx, sess.AccessToken, req)
	if err != nil {
		return err
	}

	c.printRequestOutcome(sent)
	return nil
}

func (c *Cli) runRequestRename(ctx context.Context) error {
	sess, err := c.session(ctx)
	if err != nil {
		return err
	}
	st, _ := c.fetchState(ctx, sess.AccessToken)

	c.io.Println("=== Request Shop Rename ===")
	c.io.Println()

	shop, err := c.pickShop(st.ShopsFor(sess.Username, models.UserRole(sess.Role)))
	if err != nil {
		return err
	}
	newName, err := c.readRequired("New name: ")
	if err != nil {
		return err
	}

	sent, err := c.opsService.RequestRename(ctx, sess.AccessToken, st, shop.ID, newName, sess.Username)
	if err != nil {
		return err
	}

	c.printRequestOutcome(sent)
	return nil
}

// runRequestRegistration files a shop account signup on behalf of a shop.
// The password travels inside the pending row and is scrubbed once an admin
// decides the request.
func (c *Cli) runRequestRegistration(ctx context.Context) error {
	sess, err := c.session(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Request Shop Account ===")
	c.io.Println()

	shopName, err := c.readRequired("Shop name: ")
	if err != nil {
		return err
	}
	whatsapp, err := c.io.ReadInput("WhatsApp number (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read number: %w", err)
	}
	username, err := c.readRequired("Desired username (phone number): ")
	if err != nil {
		return err
	}
	password, err := c.io.ReadPassword("Password (min 8 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	req := models.AccountRegistrationRequest{
		ShopName: shopName,
		WhatsApp: whatsapp,
		Username: username,
		Password: password,
	}
	sent, err := c.opsService.RequestRegistration(ctx, sess.AccessToken, req)
	if err != nil {
		return err
	}

	c.printRequestOutcome(sent)
	return nil
}

func (c *Cli) printRequestOutcome(sent bool) {
	c.io.Println()
	if sent {
		c.io.Println("Request filed; an admin will review it.")
	} else {
		c.io.Println("Request saved locally and queued; it will sync when the server is reachable.")
	}
}
