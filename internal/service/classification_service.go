package service

import (
	"context"
	"time"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/model"
	"github.com/bryamlazo166/cmms-app/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ClassificationService interface {
	Recalculate(ctx context.Context) (*dto.ClassificationResult, error)
}

type classificationService struct {
	repo repository.WarehouseRepository
}

func NewClassificationService(repo repository.WarehouseRepository) ClassificationService {
	return &classificationService{repo: repo}
}

// Recalculate snapshots active items plus twelve months of consumption,
// runs the ABC/XYZ engine and persists all four derived fields in one
// transaction so a crash mid-run never leaves a half-classified inventory.
func (s *classificationService) Recalculate(ctx context.Context) (*dto.ClassificationResult, error) {
	items, err := s.repo.ListItems(ctx, false)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(-1, 0, 0).Format(time.RFC3339)
	moves, err := s.repo.ListMovementsByTypesSince(ctx,
		[]string{model.MovementOut, model.MovementAdjust}, since)
	if err != nil {
		return nil, err
	}

	inputs := make([]ClassItemInput, 0, len(items))
	for _, item := range items {
		cost, _ := item.EffectiveCost().Float64()
		inputs = append(inputs, ClassItemInput{
			ID:          item.ID,
			Cost:        cost,
			LeadTime:    item.LeadTime,
			SafetyStock: item.SafetyStock,
		})
	}

	classMoves := make([]ClassMovement, 0, len(moves))
	for _, m := range moves {
		t, err := parseISODate(m.Date)
		if err != nil {
			log.Warn().Uint("movement_id", m.ID).Str("date", m.Date).
				Msg("kardex date no parseable, movimiento ignorado en clasificacion")
			continue
		}
		classMoves = append(classMoves, ClassMovement{
			ItemID:   m.ItemID,
			Quantity: m.Quantity,
			Date:     t,
		})
	}

	results := ComputeClassification(inputs, classMoves)

	result := &dto.ClassificationResult{}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, r := range results {
			if err := s.repo.UpdateClassificationTx(tx, r.ItemID, r.ABCClass, r.XYZClass, r.SafetyStock, r.ROP); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	for _, r := range results {
		switch r.ABCClass {
		case "A":
			result.ClassA++
		case "B":
			result.ClassB++
		default:
			result.ClassC++
		}
	}
	result.ItemsUpdated = len(results)
	result.Message = "Clasificacion ABC/XYZ actualizada"

	log.Info().Int("items", result.ItemsUpdated).
		Int("class_a", result.ClassA).Int("class_b", result.ClassB).Int("class_c", result.ClassC).
		Msg("clasificacion de inventario recalculada")
	return result, nil
}
