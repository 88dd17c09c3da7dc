package service

import (
	"context"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/model"
	"github.com/bryamlazo166/cmms-app/internal/repository"
)

const (
	dashboardFailureModes = 5
	dashboardRecentOTs    = 5
)

type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardService struct {
	woRepo     repository.WorkOrderRepository
	noticeRepo repository.NoticeRepository
	techRepo   repository.TechnicianRepository
}

func NewDashboardService(
	woRepo repository.WorkOrderRepository,
	noticeRepo repository.NoticeRepository,
	techRepo repository.TechnicianRepository,
) DashboardService {
	return &dashboardService{woRepo: woRepo, noticeRepo: noticeRepo, techRepo: techRepo}
}

// Stats builds the landing-page summary: headline counters, the two grouped
// chart series, the top failure modes and the latest orders.
func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	byStatus, err := s.woRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := s.woRepo.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	pendingNotices, err := s.noticeRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	activeTechs, err := s.techRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	failureRows, err := s.woRepo.TopFailureModes(ctx, dashboardFailureModes)
	if err != nil {
		return nil, err
	}
	recentOrders, err := s.woRepo.ListRecent(ctx, dashboardRecentOTs)
	if err != nil {
		return nil, err
	}

	var total, closed int64
	for status, count := range byStatus {
		total += count
		if status == model.OTCerrada {
			closed = count
		}
	}

	failures := make([]dto.FailureModeCount, 0, len(failureRows))
	for _, row := range failureRows {
		failures = append(failures, dto.FailureModeCount{Mode: row.Mode, Count: row.Count})
	}

	recent := make([]dto.RecentOT, 0, len(recentOrders))
	for _, wo := range recentOrders {
		entry := dto.RecentOT{
			Code:        wo.Code,
			Date:        "-",
			Description: wo.Description,
			Status:      wo.Status,
		}
		switch {
		case !wo.CreatedAt.IsZero():
			entry.Date = wo.CreatedAt.Format("2006-01-02")
		case wo.ScheduledDate != nil && *wo.ScheduledDate != "":
			entry.Date = *wo.ScheduledDate
		}
		recent = append(recent, entry)
	}

	return &dto.DashboardStats{
		KPI: dto.DashboardKPI{
			OpenOTs:        total - closed,
			PendingNotices: pendingNotices,
			ClosedOTs:      closed,
			ActiveTechs:    activeTechs,
		},
		Charts: dto.DashboardCharts{
			Status:   byStatus,
			Types:    byType,
			Failures: failures,
		},
		Recent: recent,
	}, nil
}
