// Package ops implements the application operations on top of the sync
// service: report submission, the request approval lifecycle and the admin
// controls. Every operation is an optimistic row write; the boolean result
// reports whether the write reached the server or was queued for later.
package ops

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	httpapi "github.com/globalstreet/postrack/internal/client/api"
	"github.com/globalstreet/postrack/internal/client/sync"
	"github.com/globalstreet/postrack/internal/models"
	"github.com/globalstreet/postrack/pkg/api"
)

var (
	ErrNotFound       = errors.New("entity not found")
	ErrNotPending     = errors.New("request is not pending")
	ErrSubmitDisabled = errors.New("reconciliation submissions are disabled")
)

// Service executes application operations against the current state.
type Service struct {
	sync   *sync.Service
	api    httpapi.ClientAPI
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

func NewService(syncService *sync.Service, apiClient httpapi.ClientAPI, logger *slog.Logger) *Service {
	return &Service{
		sync:   syncService,
		api:    apiClient,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// SubmitReport stamps and saves a daily report. A forced date set by the
// admin overrides whatever date the submitter picked. Reconciliation reports
// are refused while submissions are disabled; spot checks always go through.
func (s *Service) SubmitReport(ctx context.Context, accessToken string, st *models.AppState, report models.DailyReport) (bool, error) {
	if report.ReportType == models.ReportReconciliation && !st.SystemStatus.ReconciliationEnabled {
		return false, ErrSubmitDisabled
	}
	if report.ID == "" {
		report.ID = s.newID()
	}
	if forced := st.SystemStatus.ForcedDate; forced != "" {
		report.Date = forced
	}
	report.Timestamp = s.now().UnixMilli()

	synced := s.sync.Write(ctx, accessToken, models.ReportKey(report.ID), report)
	return synced, nil
}

// SubmitCashReport stamps and saves a physical cash count.
func (s *Service) SubmitCashReport(ctx context.Context, accessToken string, report models.CashReport) (bool, error) {
	if report.ID == "" {
		report.ID = s.newID()
	}
	report.Timestamp = s.now().UnixMilli()

	synced := s.sync.Write(ctx, accessToken, models.CashReportKey(report.ID), report)
	return synced, nil
}

// DeleteReport tombstones a report. The row stays in the store so the
// deletion replicates; consolidation and listings skip tombstoned reports.
func (s *Service) DeleteReport(ctx context.Context, accessToken string, st *models.AppState, reportID string) (bool, error) {
	report := findReport(st, reportID)
	if report == nil {
		return false, fmt.Errorf("report %s: %w", reportID, ErrNotFound)
	}
	report.IsDeleted = true
	s.logger.Info("report tombstoned", "report_id", report.ID, "shop_id", report.ShopID)

	synced := s.sync.Write(ctx, accessToken, models.ReportKey(report.ID), report)
	return synced, nil
}

// EditReport replaces an existing report with the admin's corrected version,
// keeping the original id so the row is overwritten in place. The submission
// timestamp is preserved: an edit corrects figures, it does not change the
// report's precedence in consolidation. The row's updated_at carries the
// edit instant for replication.
func (s *Service) EditReport(ctx context.Context, accessToken string, st *models.AppState, report models.DailyReport) (bool, error) {
	if findReport(st, report.ID) == nil {
		return false, fmt.Errorf("report %s: %w", report.ID, ErrNotFound)
	}

	synced := s.sync.Write(ctx, accessToken, models.ReportKey(report.ID), report)
	return synced, nil
}

// RequestMachine files a pending machine registration request.
func (s *Service) RequestMachine(ctx context.Context, accessToken string, req models.MachineRequest) (bool, error) {
	if req.ID == "" {
		req.ID = s.newID()
	}
	req.Status = models.StatusPending
	req.RequestDate = s.now().UnixMilli()

	synced := s.sync.Write(ctx, accessToken, models.MachineRequestKey(req.ID), req)
	return synced, nil
}

// RequestShop files a pending shop creation request.
func (s *Service) RequestShop(ctx context.Context, accessToken string, req models.ShopRequest) (bool, error) {
	if req.ID == "" {
		req.ID = s.newID()
	}
	req.Status = models.StatusPending
	req.RequestDate = s.now().UnixMilli()

	synced := s.sync.Write(ctx, accessToken, models.ShopRequestKey(req.ID), req)
	return synced, nil
}

// RequestRename files a pending shop rename request.
func (s *Service) RequestRename(ctx context.Context, accessToken string, st *models.AppState, shopID, newName, username string) (bool, error) {
	shop := st.ShopByID(shopID)
	if shop == nil {
		return false, fmt.Errorf("shop %s: %w", shopID, ErrNotFound)
	}
	req := models.ShopRenameRequest{
		ID:          s.newID(),
		ShopID:      shopID,
		OldName:     shop.Name,
		NewName:     newName,
		Status:      models.StatusPending,
		Username:    username,
		RequestDate: s.now().UnixMilli(),
	}

	synced := s.sync.Write(ctx, accessToken, models.RenameRequestKey(req.ID), req)
	return synced, nil
}

// RequestRegistration files a pending account registration. The password
// travels inside the request row until an admin approves or rejects it.
func (s *Service) RequestRegistration(ctx context.Context, accessToken string, req models.AccountRegistrationRequest) (bool, error) {
	if req.ID == "" {
		req.ID = s.newID()
	}
	req.Status = models.StatusPending
	req.RequestDate = s.now().UnixMilli()

	synced := s.sync.Write(ctx, accessToken, models.RegistrationKey(req.ID), req)
	return synced, nil
}

// ApproveMachineRequest registers the requested terminal on its shop and
// marks the request approved. Both rows are saved; the shop list first, so a
// half-applied approval still leaves the machine visible.
func (s *Service) ApproveMachineRequest(ctx context.Context, accessToken string, st *models.AppState, requestID string) (bool, error) {
	req := findMachineRequest(st, requestID)
	if req == nil {
		return false, fmt.Errorf("machine request %s: %w", requestID, ErrNotFound)
	}
	if req.Status != models.StatusPending {
		return false, fmt.Errorf("machine request %s: %w", requestID, ErrNotPending)
	}
	shop := st.ShopByID(req.ShopID)
	if shop == nil {
		return false, fmt.Errorf("shop %s: %w", req.ShopID, ErrNotFound)
	}

	machine := models.ShopMachine{TID: req.TID, TripleCode: req.TripleCode}
	if req.Type == "hala" {
		shop.HalaTIDs = append(shop.HalaTIDs, machine)
	} else {
		shop.StandardTIDs = append(shop.StandardTIDs, machine)
	}

	synced := s.sync.Write(ctx, accessToken, models.KeyShops, st.Shops)

	req.Status = models.StatusApproved
	if !s.sync.Write(ctx, accessToken, models.MachineRequestKey(req.ID), req) {
		synced = false
	}
	return synced, nil
}

// ApproveShopRequest creates the requested shop and marks the request
// approved. An initial terminal on the request is registered right away.
func (s *Service) ApproveShopRequest(ctx context.Context, accessToken string, st *models.AppState, requestID string) (bool, error) {
	req := findShopRequest(st, requestID)
	if req == nil {
		return false, fmt.Errorf("shop request %s: %w", requestID, ErrNotFound)
	}
	if req.Status != models.StatusPending {
		return false, fmt.Errorf("shop request %s: %w", requestID, ErrNotPending)
	}

	shop := models.Shop{
		ID:           s.newID(),
		Name:         req.RequestedName,
		Location:     req.RequestedLocation,
		Category:     req.RequestedCategory,
		PartnerName:  req.PartnerName,
		IsDirect:     req.IsDirect,
		StandardTIDs: []models.ShopMachine{},
		HalaTIDs:     []models.ShopMachine{},
	}
	if req.InitialTID != "" {
		shop.StandardTIDs = append(shop.StandardTIDs,
			models.ShopMachine{TID: req.InitialTID, TripleCode: req.InitialTripleCode})
	}
	st.Shops = append(st.Shops, shop)

	synced := s.sync.Write(ctx, accessToken, models.KeyShops, st.Shops)

	req.Status = models.StatusApproved
	if !s.sync.Write(ctx, accessToken, models.ShopRequestKey(req.ID), req) {
		synced = false
	}
	return synced, nil
}

// ApproveRenameRequest renames the shop and rewrites the shop name on every
// report that references it, so historical listings show the current name.
func (s *Service) ApproveRenameRequest(ctx context.Context, accessToken string, st *models.AppState, requestID string) (bool, error) {
	req := findRenameRequest(st, requestID)
	if req == nil {
		return false, fmt.Errorf("rename request %s: %w", requestID, ErrNotFound)
	}
	if req.Status != models.StatusPending {
		return false, fmt.Errorf("rename request %s: %w", requestID, ErrNotPending)
	}
	shop := st.ShopByID(req.ShopID)
	if shop == nil {
		return false, fmt.Errorf("shop %s: %w", req.ShopID, ErrNotFound)
	}

	shop.Name = req.NewName
	synced := s.sync.Write(ctx, accessToken, models.KeyShops, st.Shops)

	for i := range st.Reports {
		if st.Reports[i].ShopID != req.ShopID {
			continue
		}
		st.Reports[i].ShopName = req.NewName
		if !s.sync.Write(ctx, accessToken, models.ReportKey(st.Reports[i].ID), st.Reports[i]) {
			synced = false
		}
	}

	req.Status = models.StatusApproved
	if !s.sync.Write(ctx, accessToken, models.RenameRequestKey(req.ID), req) {
		synced = false
	}
	return synced, nil
}

// ApproveRegistration creates the server login for the requested account,
// adds the user to the replicated users collection and marks the request
// approved. The server registration is the only step that must reach the
// network; without it there is nothing to log in to.
func (s *Service) ApproveRegistration(ctx context.Context, accessToken string, st *models.AppState, requestID string, role models.UserRole) (bool, error) {
	req := findRegistration(st, requestID)
	if req == nil {
		return false, fmt.Errorf("registration %s: %w", requestID, ErrNotFound)
	}
	if req.Status != models.StatusPending {
		return false, fmt.Errorf("registration %s: %w", requestID, ErrNotPending)
	}

	resp, err := s.api.Register(ctx, api.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
		Role:     string(role),
	})
	if err != nil {
		return false, fmt.Errorf("register account %s: %w", req.Username, err)
	}

	s.logger.Info("account registered", "username", req.Username, "role", role)

	st.Users = append(st.Users, models.User{
		ID:       resp.UserID,
		Username: req.Username,
		Role:     role,
	})
	synced := s.sync.Write(ctx, accessToken, models.KeyUsers, st.Users)

	req.Status = models.StatusApproved
	req.Password = "" // scrub once the account exists
	if !s.sync.Write(ctx, accessToken, models.RegistrationKey(req.ID), req) {
		synced = false
	}
	return synced, nil
}

// RejectMachineRequest marks a machine request rejected.
func (s *Service) RejectMachineRequest(ctx context.Context, accessToken string, st *models.AppState, requestID string) (bool, error) {
	req := findMachineRequest(st, requestID)
	if req == nil {
		return false, fmt.Errorf("machine request %s: %w", requestID, ErrNotFound)
	}
	req.Status = models.StatusRejected
	return s.sync.Write(ctx, accessToken, models.MachineRequestKey(req.ID), req), nil
}

// RejectShopRequest marks a shop request rejected.
func (s *Service) RejectShopRequest(ctx context.Context, accessToken string, st *models.AppState, requestID string) (bool, error) {
	req := findShopRequest(st, requestID)
	if req == nil {
		return false, fmt.Errorf("shop request %s: %w", requestID, ErrNotFound)
	}
	req.Status = models.StatusRejected
	return s.sync.Write(ctx, accessToken, models.ShopRequestKey(req.ID), req), nil
}

// RejectRenameRequest marks a rename request rejected.
func (s *Service) RejectRenameRequest(ctx context.Context, accessToken string, st *models.AppState, requestID string) (bool, error) {
	req := findRenameRequest(st, requestID)
	if req == nil {
		return false, fmt.Errorf("rename request %s: %w", requestID, ErrNotFound)
	}
	req.Status = models.StatusRejected
	return s.sync.Write(ctx, accessToken, models.RenameRequestKey(req.ID), req), nil
}

// RejectRegistration marks a registration rejected and scrubs its password.
func (s *Service) RejectRegistration(ctx context.Context, accessToken string, st *models.AppState, requestID string) (bool, error) {
	req := findRegistration(st, requestID)
	if req == nil {
		return false, fmt.Errorf("registration %s: %w", requestID, ErrNotFound)
	}
	req.Status = models.StatusRejected
	req.Password = ""
	return s.sync.Write(ctx, accessToken, models.RegistrationKey(req.ID), req), nil
}

// SetSystemStatus replaces the singleton system status row.
func (s *Service) SetSystemStatus(ctx context.Context, accessToken string, status models.SystemStatus) bool {
	return s.sync.Write(ctx, accessToken, models.KeySystemStatus, status)
}

// RequestSpotChecks asks the given shops to report their machine totals
// right now, replacing any earlier spot check request.
func (s *Service) RequestSpotChecks(ctx context.Context, accessToken string, st *models.AppState, shopIDs []string) bool {
	status := st.SystemStatus
	status.ActiveSpotRequests = shopIDs
	return s.SetSystemStatus(ctx, accessToken, status)
}

// SaveAssignments replaces the collector assignment singleton.
func (s *Service) SaveAssignments(ctx context.Context, accessToken string, assignments []models.UserAssignment) bool {
	return s.sync.Write(ctx, accessToken, models.KeyAssignments, assignments)
}

func findReport(st *models.AppState, id string) *models.DailyReport {
	for i := range st.Reports {
		if st.Reports[i].ID == id {
			return &st.Reports[i]
		}
	}
	return nil
}

func findMachineRequest(st *models.AppState, id string) *models.MachineRequest {
	for i := range st.MachineRequests {
		if st.MachineRequests[i].ID == id {
			return &st.MachineRequests[i]
		}
	}
	return nil
}

func findShopRequest(st *models.AppState, id string) *models.ShopRequest {
	for i := range st.ShopRequests {
		if st.ShopRequests[i].ID == id {
			return &st.ShopRequests[i]
		}
	}
	return nil
}

func findRenameRequest(st *models.AppState, id string) *models.ShopRenameRequest {
	for i := range st.RenameRequests {
		if st.RenameRequests[i].ID == id {
			return &st.RenameRequests[i]
		}
	}
	return nil
}

func findRegistration(st *models.AppState, id string) *models.AccountRegistrationRequest {
	for i := range st.AccountRegistrations {
		if st.AccountRegistrations[i].ID == id {
			return &st.AccountRegistrations[i]
		}
	}
	return nil
}
