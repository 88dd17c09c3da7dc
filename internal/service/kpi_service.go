package service

import (
	"context"
	"time"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/repository"
)

type KPIService interface {
	Report(ctx context.Context, filter dto.KPIFilter) (*dto.KPIResponse, error)
}

type kpiService struct {
	woRepo   repository.WorkOrderRepository
	taxonomy repository.TaxonomyRepository
}

func NewKPIService(woRepo repository.WorkOrderRepository, taxonomy repository.TaxonomyRepository) KPIService {
	return &kpiService{woRepo: woRepo, taxonomy: taxonomy}
}

type kpiGroup struct {
	id       uint
	name     string
	equipIDs map[uint]bool
}

// Report aggregates reliability KPIs per group. The grouping level follows
// the filter: a line breaks down into its equipments, an area into its lines,
// no filter into all areas. Closed work orders are attributed to equipments
// through a single resolved query, then bucketed per group.
func (s *kpiService) Report(ctx context.Context, filter dto.KPIFilter) (*dto.KPIResponse, error) {
	level, groups, err := s.buildGroups(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.woRepo.ListClosedResolved(ctx)
	if err != nil {
		return nil, err
	}

	var start, end *time.Time
	if t, err := parseISODate(filter.StartDate); filter.StartDate != "" && err == nil {
		start = &t
	}
	if t, err := parseISODate(filter.EndDate); filter.EndDate != "" && err == nil {
		end = &t
	}

	// One cost query for every matched order instead of per-material lookups.
	matched := make([]repository.ClosedOTRow, 0, len(rows))
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		if !inWindow(row.RealEndDate, start, end) {
			continue
		}
		matched = append(matched, row)
		ids = append(ids, row.ID)
	}
	costRows, err := s.woRepo.MaterialCostByWorkOrder(ctx, ids)
	if err != nil {
		return nil, err
	}
	costByOT := make(map[uint]float64, len(costRows))
	for _, c := range costRows {
		costByOT[c.WorkOrderID] = c.Cost
	}

	totalHours := windowHours(filter.StartDate, filter.EndDate)

	resp := &dto.KPIResponse{Level: level, Groups: make([]dto.KPIGroup, 0, len(groups))}
	for _, g := range groups {
		var inputs []KPIOTInput
		for _, row := range matched {
			if row.ResolvedEquipmentID == nil || !g.equipIDs[*row.ResolvedEquipmentID] {
				continue
			}
			in := KPIOTInput{Cost: costByOT[row.ID]}
			if row.MaintenanceType != nil {
				in.MaintenanceType = *row.MaintenanceType
			}
			if row.RealDuration != nil {
				in.RealDuration = *row.RealDuration
			}
			inputs = append(inputs, in)
		}
		k := computeKPI(inputs, totalHours)
		resp.Groups = append(resp.Groups, dto.KPIGroup{
			ID:           g.id,
			Name:         g.name,
			Cost:         k.Cost,
			Failures:     k.Failures,
			MTBF:         k.MTBF,
			MTTR:         k.MTTR,
			Availability: k.Availability,
			OTCount:      k.OTCount,
		})
	}
	return resp, nil
}

func (s *kpiService) buildGroups(ctx context.Context, filter dto.KPIFilter) (string, []kpiGroup, error) {
	switch {
	case filter.LineID != nil:
		if _, err := s.taxonomy.FindLineByID(ctx, *filter.LineID); err != nil {
			return "", nil, notFound("Linea", *filter.LineID)
		}
		equips, err := s.taxonomy.ListEquipmentsByLine(ctx, *filter.LineID)
		if err != nil {
			return "", nil, err
		}
		groups := make([]kpiGroup, 0, len(equips))
		for _, e := range equips {
			groups = append(groups, kpiGroup{id: e.ID, name: e.Name, equipIDs: map[uint]bool{e.ID: true}})
		}
		return "equipment", groups, nil

	case filter.AreaID != nil:
		if _, err := s.taxonomy.FindAreaByID(ctx, *filter.AreaID); err != nil {
			return "", nil, notFound("Area", *filter.AreaID)
		}
		lines, err := s.taxonomy.ListLinesByArea(ctx, *filter.AreaID)
		if err != nil {
			return "", nil, err
		}
		groups := make([]kpiGroup, 0, len(lines))
		for _, l := range lines {
			g := kpiGroup{id: l.ID, name: l.Name, equipIDs: make(map[uint]bool)}
			equips, err := s.taxonomy.ListEquipmentsByLine(ctx, l.ID)
			if err != nil {
				return "", nil, err
			}
			for _, e := range equips {
				g.equipIDs[e.ID] = true
			}
			groups = append(groups, g)
		}
		return "line", groups, nil

	default:
		areas, err := s.taxonomy.ListAreas(ctx)
		if err != nil {
			return "", nil, err
		}
		groups := make([]kpiGroup, 0, len(areas))
		for _, a := range areas {
			g := kpiGroup{id: a.ID, name: a.Name, equipIDs: make(map[uint]bool)}
			lines, err := s.taxonomy.ListLinesByArea(ctx, a.ID)
			if err != nil {
				return "", nil, err
			}
			for _, l := range lines {
				equips, err := s.taxonomy.ListEquipmentsByLine(ctx, l.ID)
				if err != nil {
					return "", nil, err
				}
				for _, e := range equips {
					g.equipIDs[e.ID] = true
				}
			}
			groups = append(groups, g)
		}
		return "area", groups, nil
	}
}
