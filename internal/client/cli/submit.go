package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/globalstreet/postrack/internal/models"
)

func (c *Cli) runSubmit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing submission type. Usage: postrack submit <report|cash>")
	}
	switch args[0] {
	case "report":
		return c.runSubmitReport(ctx)
	case "cash":
		return c.runSubmitCash(ctx)
	default:
		return fmt.Errorf("unknown submission type: %s. Use: report or cash", args[0])
	}
}

func (c *Cli) runSubmitReport(ctx context.Context) error {
	sess, err := c.session(ctx)
	if err != nil {
		return err
	}

	st, online := c.fetchState(ctx, sess.AccessToken)
	if !online {
		c.io.Println("Server unreachable; the report will be queued and sent later.")
	}

	c.io.Println("=== Submit Daily Report ===")
	c.io.Println()

	shop, err := c.pickShop(st.ShopsFor(sess.Username, models.UserRole(sess.Role)))
	if err != nil {
		return err
	}

	date, err := c.io.ReadInput(fmt.Sprintf("Date [%s]: ", today()))
	if err != nil {
		return fmt.Errorf("failed to read date: %w", err)
	}
	if date == "" {
		date = today()
	}
	if date, err = parseDate(date); err != nil {
		return err
	}

	reportType := models.ReportReconciliation
	if len(st.SystemStatus.ActiveSpotRequests) > 0 {
		for _, id := range st.SystemStatus.ActiveSpotRequests {
			if id == shop.ID {
				spot, confErr := c.confirm("A spot check is requested for this shop. Submit as spot check? (yes/no): ")
				if confErr != nil {
					return confErr
				}
				if spot {
					reportType = models.ReportSpotCheck
				}
				break
			}
		}
	}

	machines, err := c.readMachines(shop)
	if err != nil {
		return err
	}

	cashReceived, err := c.readAmount("Cash received: ")
	if err != nil {
		return err
	}
	cashRemaining, err := c.readAmount("Cash remaining: ")
	if err != nil {
		return err
	}
	commission, err := c.readAmount("Commission: ")
	if err != nil {
		return err
	}
	notes, err := c.io.ReadInput("Notes (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	report := models.DailyReport{
		UserID:        sess.UserID,
		Username:      sess.Username,
		ShopID:        shop.ID,
		ShopName:      shop.Name,
		Location:      shop.Location,
		Category:      shop.Category,
		PartnerName:   shop.PartnerName,
		IsDirect:      shop.IsDirect,
		Date:          date,
		ReportType:    reportType,
		POSMachines:   machines,
		CashReceived:  cashReceived,
		CashRemaining: cashRemaining,
		Commission:    commission,
		Notes:         notes,
	}

	c.io.Println()
	c.io.Printf("Machine total: %s\n", report.MachineTotal())
	c.io.Printf("Net cash:      %s\n", report.NetCash())
	c.io.Printf("Grand total:   %s\n", report.GrandTotal())
	ok, err := c.confirm("Submit this report? (yes/no): ")
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Submission cancelled.")
		return nil
	}

	sent, err := c.opsService.SubmitReport(ctx, sess.AccessToken, st, report)
	if err != nil {
		return err
	}

	c.io.Println()
	if sent {
		c.io.Println("Report submitted.")
	} else {
		c.io.Println("Report saved locally and queued; it will sync when the server is reachable.")
	}
	return nil
}

func (c *Cli) runSubmitCash(ctx context.Context) error {
	sess, err := c.session(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Submit Cash Count ===")
	c.io.Println()

	date, err := c.io.ReadInput(fmt.Sprintf("Date [%s]: ", today()))
	if err != nil {
		return fmt.Errorf("failed to read date: %w", err)
	}
	if date == "" {
		date = today()
	}
	if date, err = parseDate(date); err != nil {
		return err
	}

	denoms, total, err := c.readDenominations()
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Counted total: %s\n", total)
	ok, err := c.confirm("Submit this cash count? (yes/no): ")
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Submission cancelled.")
		return nil
	}

	report := models.CashReport{
		UserID:        sess.UserID,
		Username:      sess.Username,
		Date:          date,
		Denominations: denoms,
		TotalAmount:   total,
	}

	sent, err := c.opsService.SubmitCashReport(ctx, sess.AccessToken, report)
	if err != nil {
		return err
	}

	c.io.Println()
	if sent {
		c.io.Println("Cash count submitted.")
	} else {
		c.io.Println("Cash count saved locally and queued.")
	}
	return nil
}

// pickShop lists the given shops and asks for one by number or id.
func (c *Cli) pickShop(shops []models.Shop) (*models.Shop, error) {
	if len(shops) == 0 {
		return nil, fmt.Errorf("no shops available. Run 'postrack sync' first or ask an admin to create one")
	}

	c.io.Println("Shops:")
	for i := range shops {
		c.io.Printf("  %d. %s (%s)\n", i+1, shops[i].Name, shops[i].Location)
	}
	input, err := c.readRequired("Shop (number or id): ")
	if err != nil {
		return nil, err
	}

	for i := range shops {
		if shops[i].ID == input {
			return &shops[i], nil
		}
	}
	var idx int
	if _, err := fmt.Sscanf(input, "%d", &idx); err == nil && idx >= 1 && idx <= len(shops) {
		return &shops[idx-1], nil
	}
	return nil, fmt.Errorf("unknown shop: %s", input)
}

// readMachines prompts an amount for every terminal registered on the shop.
// Empty input records a zero amount for that terminal.
func (c *Cli) readMachines(shop *models.Shop) ([]models.POSMachine, error) {
	machines := make([]models.POSMachine, 0, len(shop.StandardTIDs)+len(shop.HalaTIDs))

	for _, m := range shop.StandardTIDs {
		amount, err := c.readAmount(fmt.Sprintf("Terminal %s amount: ", m.TID))
		if err != nil {
			return nil, err
		}
		machines = append(machines, models.POSMachine{
			ID:         m.TID,
			TID:        m.TID,
			TripleCode: m.TripleCode,
			Type:       "standard",
			Amount:     amount,
		})
	}
	for _, m := range shop.HalaTIDs {
		amount, err := c.readAmount(fmt.Sprintf("Hala terminal %s amount: ", m.TID))
		if err != nil {
			return nil, err
		}
		machines = append(machines, models.POSMachine{
			ID:         m.TID,
			TID:        m.TID,
			TripleCode: m.TripleCode,
			Type:       "hala",
			Amount:     amount,
		})
	}
	return machines, nil
}

// denominationValues pairs each prompt with its note value. Order matters:
// counting goes from the largest note down.
var denominationValues = []struct {
	label string
	value decimal.Decimal
	set   func(*models.Denominations, int)
}{
	{"500", decimal.NewFromInt(500), func(d *models.Denominations, n int) { d.Val500 = n }},
	{"200", decimal.NewFromInt(200), func(d *models.Denominations, n int) { d.Val200 = n }},
	{"100", decimal.NewFromInt(100), func(d *models.Denominations, n int) { d.Val100 = n }},
	{"50", decimal.NewFromInt(50), func(d *models.Denominations, n int) { d.Val50 = n }},
	{"20", decimal.NewFromInt(20), func(d *models.Denominations, n int) { d.Val20 = n }},
	{"10", decimal.NewFromInt(10), func(d *models.Denominations, n int) { d.Val10 = n }},
	{"5", decimal.NewFromInt(5), func(d *models.Denominations, n int) { d.Val5 = n }},
	{"2", decimal.NewFromInt(2), func(d *models.Denominations, n int) { d.Val2 = n }},
	{"1", decimal.NewFromInt(1), func(d *models.Denominations, n int) { d.Val1 = n }},
	{"0.5", decimal.NewFromFloat(0.5), func(d *models.Denominations, n int) { d.ValHalf = n }},
	{"0.25", decimal.NewFromFloat(0.25), func(d *models.Denominations, n int) { d.ValQtr = n }},
}

func (c *Cli) readDenominations() (models.Denominations, decimal.Decimal, error) {
	var denoms models.Denominations
	total := decimal.Zero

	for _, dv := range denominationValues {
		input, err := c.io.ReadInput(fmt.Sprintf("Count of %s notes [0]: ", dv.label))
		if err != nil {
			return denoms, total, fmt.Errorf("failed to read count: %w", err)
		}
		if input == "" {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(input, "%d", &n); err != nil || n < 0 {
			return denoms, total, fmt.Errorf("invalid count %q", input)
		}
		dv.set(&denoms, n)
		total = total.Add(dv.value.Mul(decimal.NewFromInt(int64(n))))
	}
	return denoms, total, nil
}
