package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/model"
	"github.com/bryamlazo166/cmms-app/internal/repository"

	"github.com/rs/zerolog/log"
)

type TaxonomyService interface {
	// Areas
	CreateArea(ctx context.Context, req dto.CreateAreaRequest) (*model.Area, error)
	ListAreas(ctx context.Context) ([]model.Area, error)
	UpdateArea(ctx context.Context, id uint, req dto.UpdateAreaRequest) (*model.Area, error)
	DeleteArea(ctx context.Context, id uint) error

	// Lines
	CreateLine(ctx context.Context, req dto.CreateLineRequest) (*model.Line, error)
	ListLines(ctx context.Context) ([]model.Line, error)
	UpdateLine(ctx context.Context, id uint, req dto.UpdateLineRequest) (*model.Line, error)
	DeleteLine(ctx context.Context, id uint) error

	// Equipments
	CreateEquipment(ctx context.Context, req dto.CreateEquipmentRequest) (*model.Equipment, error)
	ListEquipments(ctx context.Context) ([]model.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint, req dto.UpdateEquipmentRequest) (*model.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint) error

	// Systems
	CreateSystem(ctx context.Context, req dto.CreateSystemRequest) (*model.System, error)
	ListSystems(ctx context.Context) ([]model.System, error)
	UpdateSystem(ctx context.Context, id uint, req dto.UpdateSystemRequest) (*model.System, error)
	DeleteSystem(ctx context.Context, id uint) error

	// Components
	CreateComponent(ctx context.Context, req dto.CreateComponentRequest) (*model.Component, error)
	ListComponents(ctx context.Context) ([]model.Component, error)
	UpdateComponent(ctx context.Context, id uint, req dto.UpdateComponentRequest) (*model.Component, error)
	DeleteComponent(ctx context.Context, id uint) error

	// Spare parts
	CreateSparePart(ctx context.Context, req dto.CreateSparePartRequest) (*model.SparePart, error)
	ListSpareParts(ctx context.Context) ([]model.SparePart, error)
	UpdateSparePart(ctx context.Context, id uint, req dto.UpdateSparePartRequest) (*model.SparePart, error)
	DeleteSparePart(ctx context.Context, id uint) error

	// Bulk loading
	BulkPaste(ctx context.Context, req dto.BulkPasteRequest) (*dto.BulkResult, error)
	BulkPasteHierarchy(ctx context.Context, req dto.BulkPasteHierarchyRequest) (*dto.BulkResult, error)
	ImportWorkbook(ctx context.Context, sheets map[string][]map[string]string) (*dto.ExcelImportResult, error)
	FlattenedExport(ctx context.Context) ([]dto.TaxonomyFlatRow, error)
}

type taxonomyService struct {
	repo repository.TaxonomyRepository
}

func NewTaxonomyService(repo repository.TaxonomyRepository) TaxonomyService {
	return &taxonomyService{repo: repo}
}

// ── Areas ────────────────────────────────────────────────────────────────────

func (s *taxonomyService) CreateArea(ctx context.Context, req dto.CreateAreaRequest) (*model.Area, error) {
	a := &model.Area{Name: req.Name, Description: req.Description}
	if err := s.repo.CreateArea(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *taxonomyService) ListAreas(ctx context.Context) ([]model.Area, error) {
	return s.repo.ListAreas(ctx)
}

func (s *taxonomyService) UpdateArea(ctx context.Context, id uint, req dto.UpdateAreaRequest) (*model.Area, error) {
	a, err := s.repo.FindAreaByID(ctx, id)
	if err != nil {
		return nil, notFound("Area", id)
	}
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Description != nil {
		a.Description = req.Description
	}
	if err := s.repo.SaveArea(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *taxonomyService) DeleteArea(ctx context.Context, id uint) error {
	if _, err := s.repo.FindAreaByID(ctx, id); err != nil {
		return notFound("Area", id)
	}
	return s.repo.DeleteArea(ctx, id)
}

// ── Lines ────────────────────────────────────────────────────────────────────

func (s *taxonomyService) CreateLine(ctx context.Context, req dto.CreateLineRequest) (*model.Line, error) {
	if _, err := s.repo.FindAreaByID(ctx, req.AreaID); err != nil {
		return nil, notFound("Area", req.AreaID)
	}
	l := &model.Line{Name: req.Name, Description: req.Description, AreaID: req.AreaID}
	if err := s.repo.CreateLine(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *taxonomyService) ListLines(ctx context.Context) ([]model.Line, error) {
	return s.repo.ListLines(ctx)
}

func (s *taxonomyService) UpdateLine(ctx context.Context, id uint, req dto.UpdateLineRequest) (*model.Line, error) {
	l, err := s.repo.FindLineByID(ctx, id)
	if err != nil {
		return nil, notFound("Linea", id)
	}
	if req.Name != nil {
		l.Name = *req.Name
	}
	if req.Description != nil {
		l.Description = req.Description
	}
	if req.AreaID != nil {
		l.AreaID = *req.AreaID
	}
	if err := s.repo.SaveLine(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *taxonomyService) DeleteLine(ctx context.Context, id uint) error {
	if _, err := s.repo.FindLineByID(ctx, id); err != nil {
		return notFound("Linea", id)
	}
	return s.repo.DeleteLine(ctx, id)
}

// ── Equipments ───────────────────────────────────────────────────────────────

func (s *taxonomyService) CreateEquipment(ctx context.Context, req dto.CreateEquipmentRequest) (*model.Equipment, error) {
	if _, err := s.repo.FindLineByID(ctx, req.LineID); err != nil {
		return nil, notFound("Linea", req.LineID)
	}
	e := &model.Equipment{
		Name:        req.Name,
		Tag:         req.Tag,
		Description: req.Description,
		Criticality: req.Criticality,
		LineID:      req.LineID,
	}
	if err := s.repo.CreateEquipment(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *taxonomyService) ListEquipments(ctx context.Context) ([]model.Equipment, error) {
	return s.repo.ListEquipments(ctx)
}

func (s *taxonomyService) UpdateEquipment(ctx context.Context, id uint, req dto.UpdateEquipmentRequest) (*model.Equipment, error) {
	e, err := s.repo.FindEquipmentByID(ctx, id)
	if err != nil {
		return nil, notFound("Equipo", id)
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Tag != nil {
		e.Tag = *req.Tag
	}
	if req.Description != nil {
		e.Description = req.Description
	}
	if req.Criticality != nil {
		e.Criticality = req.Criticality
	}
	if req.LineID != nil {
		e.LineID = *req.LineID
	}
	if err := s.repo.SaveEquipment(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *taxonomyService) DeleteEquipment(ctx context.Context, id uint) error {
	if _, err := s.repo.FindEquipmentByID(ctx, id); err != nil {
		return notFound("Equipo", id)
	}
	return s.repo.DeleteEquipment(ctx, id)
}

// ── Systems ──────────────────────────────────────────────────────────────────

func (s *taxonomyService) CreateSystem(ctx context.Context, req dto.CreateSystemRequest) (*model.System, error) {
	if _, err := s.repo.FindEquipmentByID(ctx, req.EquipmentID); err != nil {
		return nil, notFound("Equipo", req.EquipmentID)
	}
	sys := &model.System{Name: req.Name, EquipmentID: req.EquipmentID}
	if err := s.repo.CreateSystem(ctx, sys); err != nil {
		return nil, err
	}
	return sys, nil
}

func (s *taxonomyService) ListSystems(ctx context.Context) ([]model.System, error) {
	return s.repo.ListSystems(ctx)
}

func (s *taxonomyService) UpdateSystem(ctx context.Context, id uint, req dto.UpdateSystemRequest) (*model.System, error) {
	sys, err := s.repo.FindSystemByID(ctx, id)
	if err != nil {
		return nil, notFound("Sistema", id)
	}
	if req.Name != nil {
		sys.Name = *req.Name
	}
	if req.EquipmentID != nil {
		sys.EquipmentID = *req.EquipmentID
	}
	if err := s.repo.SaveSystem(ctx, sys); err != nil {
		return nil, err
	}
	return sys, nil
}

func (s *taxonomyService) DeleteSystem(ctx context.Context, id uint) error {
	if _, err := s.repo.FindSystemByID(ctx, id); err != nil {
		return notFound("Sistema", id)
	}
	return s.repo.DeleteSystem(ctx, id)
}

// ── Components ───────────────────────────────────────────────────────────────

func (s *taxonomyService) CreateComponent(ctx context.Context, req dto.CreateComponentRequest) (*model.Component, error) {
	if _, err := s.repo.FindSystemByID(ctx, req.SystemID); err != nil {
		return nil, notFound("Sistema", req.SystemID)
	}
	c := &model.Component{
		Name:        req.Name,
		Description: req.Description,
		Criticality: req.Criticality,
		SystemID:    req.SystemID,
	}
	if err := s.repo.CreateComponent(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *taxonomyService) ListComponents(ctx context.Context) ([]model.Component, error) {
	return s.repo.ListComponents(ctx)
}

func (s *taxonomyService) UpdateComponent(ctx context.Context, id uint, req dto.UpdateComponentRequest) (*model.Component, error) {
	c, err := s.repo.FindComponentByID(ctx, id)
	if err != nil {
		return nil, notFound("Componente", id)
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.Criticality != nil {
		c.Criticality = req.Criticality
	}
	if req.SystemID != nil {
		c.SystemID = *req.SystemID
	}
	if err := s.repo.SaveComponent(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *taxonomyService) DeleteComponent(ctx context.Context, id uint) error {
	if _, err := s.repo.FindComponentByID(ctx, id); err != nil {
		return notFound("Componente", id)
	}
	return s.repo.DeleteComponent(ctx, id)
}

// ── Spare parts ──────────────────────────────────────────────────────────────

func (s *taxonomyService) CreateSparePart(ctx context.Context, req dto.CreateSparePartRequest) (*model.SparePart, error) {
	if _, err := s.repo.FindComponentByID(ctx, req.ComponentID); err != nil {
		return nil, notFound("Componente", req.ComponentID)
	}
	sp := &model.SparePart{
		Name:        req.Name,
		Code:        req.Code,
		Brand:       req.Brand,
		Quantity:    req.Quantity,
		ComponentID: req.ComponentID,
	}
	if err := s.repo.CreateSparePart(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *taxonomyService) ListSpareParts(ctx context.Context) ([]model.SparePart, error) {
	return s.repo.ListSpareParts(ctx)
}

func (s *taxonomyService) UpdateSparePart(ctx context.Context, id uint, req dto.UpdateSparePartRequest) (*model.SparePart, error) {
	sp, err := s.repo.FindSparePartByID(ctx, id)
	if err != nil {
		return nil, notFound("Repuesto", id)
	}
	if req.Name != nil {
		sp.Name = *req.Name
	}
	if req.Code != nil {
		sp.Code = *req.Code
	}
	if req.Brand != nil {
		sp.Brand = *req.Brand
	}
	if req.Quantity != nil {
		sp.Quantity = *req.Quantity
	}
	if req.ComponentID != nil {
		sp.ComponentID = *req.ComponentID
	}
	if err := s.repo.SaveSparePart(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *taxonomyService) DeleteSparePart(ctx context.Context, id uint) error {
	if _, err := s.repo.FindSparePartByID(ctx, id); err != nil {
		return notFound("Repuesto", id)
	}
	return s.repo.DeleteSparePart(ctx, id)
}

// ── Bulk loading ─────────────────────────────────────────────────────────────

// parseTSV reads Excel copy-paste text: first row headers, tab-separated.
func parseTSV(raw string) []map[string]string {
	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n")), "\n")
	if len(lines) < 2 {
		return nil
	}
	headers := strings.Split(lines[0], "\t")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}
	rows := make([]map[string]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := strings.Split(line, "\t")
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				row[h] = strings.TrimSpace(cells[i])
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// BulkPaste loads TSV rows for one entity level. Rows whose parent chain
// cannot be resolved are skipped, duplicates (same name under the same
// parent) are skipped.
func (s *taxonomyService) BulkPaste(ctx context.Context, req dto.BulkPasteRequest) (*dto.BulkResult, error) {
	rows := parseTSV(req.RawData)
	if len(rows) == 0 {
		return nil, invalid("sin filas para procesar")
	}
	created, err := s.applyEntityRows(ctx, req.EntityType, rows)
	if err != nil {
		return nil, err
	}
	return &dto.BulkResult{
		Message: fmt.Sprintf("Carga masiva de %s completada", req.EntityType),
		Created: created,
		Skipped: len(rows) - created,
	}, nil
}

func (s *taxonomyService) applyEntityRows(ctx context.Context, entityType string, rows []map[string]string) (int, error) {
	created := 0
	for _, row := range rows {
		name := row["Name"]
		if name == "" {
			continue
		}
		switch entityType {
		case "Areas":
			if _, err := s.repo.FindAreaByName(ctx, name); err == nil {
				continue
			}
			desc := row["Description"]
			if err := s.repo.CreateArea(ctx, &model.Area{Name: name, Description: &desc}); err != nil {
				return created, err
			}
			created++

		case "Lines":
			area, err := s.repo.FindAreaByName(ctx, row["AreaName"])
			if err != nil {
				continue
			}
			if _, err := s.repo.FindLineByName(ctx, name, area.ID); err == nil {
				continue
			}
			desc := row["Description"]
			if err := s.repo.CreateLine(ctx, &model.Line{Name: name, Description: &desc, AreaID: area.ID}); err != nil {
				return created, err
			}
			created++

		case "Equipments":
			line, ok := s.resolveLine(ctx, row)
			if !ok {
				continue
			}
			if _, err := s.repo.FindEquipmentByName(ctx, name, line.ID); err == nil {
				continue
			}
			desc := row["Description"]
			if err := s.repo.CreateEquipment(ctx, &model.Equipment{
				Name: name, Tag: row["Tag"], Description: &desc, LineID: line.ID,
			}); err != nil {
				return created, err
			}
			created++

		case "Systems":
			equip, ok := s.resolveEquipment(ctx, row)
			if !ok {
				continue
			}
			if _, err := s.repo.FindSystemByName(ctx, name, equip.ID); err == nil {
				continue
			}
			if err := s.repo.CreateSystem(ctx, &model.System{Name: name, EquipmentID: equip.ID}); err != nil {
				return created, err
			}
			created++

		case "Components":
			sys, ok := s.resolveSystem(ctx, row)
			if !ok {
				continue
			}
			if _, err := s.repo.FindComponentByName(ctx, name, sys.ID); err == nil {
				continue
			}
			desc := row["Description"]
			if err := s.repo.CreateComponent(ctx, &model.Component{
				Name: name, Description: &desc, SystemID: sys.ID,
			}); err != nil {
				return created, err
			}
			created++

		case "SpareParts":
			comp, ok := s.resolveComponent(ctx, row)
			if !ok {
				continue
			}
			qty, _ := strconv.Atoi(row["Quantity"])
			if err := s.repo.CreateSparePart(ctx, &model.SparePart{
				Name:        name,
				Code:        row["Code"],
				Brand:       row["Brand"],
				Quantity:    qty,
				ComponentID: comp.ID,
			}); err != nil {
				return created, err
			}
			created++

		default:
			return created, invalid("tipo de entidad invalido: %s", entityType)
		}
	}
	return created, nil
}

// Parent resolution walks the named chain top-down. Rows with an incomplete
// chain are skipped rather than rejected, matching the paste workflow where
// partial rows are common.

func (s *taxonomyService) resolveLine(ctx context.Context, row map[string]string) (*model.Line, bool) {
	area, err := s.repo.FindAreaByName(ctx, row["AreaName"])
	if err != nil {
		return nil, false
	}
	line, err := s.repo.FindLineByName(ctx, row["LineName"], area.ID)
	if err != nil {
		return nil, false
	}
	return line, true
}

func (s *taxonomyService) resolveEquipment(ctx context.Context, row map[string]string) (*model.Equipment, bool) {
	line, ok := s.resolveLine(ctx, row)
	if !ok {
		return nil, false
	}
	equip, err := s.repo.FindEquipmentByName(ctx, row["EquipmentName"], line.ID)
	if err != nil {
		return nil, false
	}
	return equip, true
}

func (s *taxonomyService) resolveSystem(ctx context.Context, row map[string]string) (*model.System, bool) {
	equip, ok := s.resolveEquipment(ctx, row)
	if !ok {
		return nil, false
	}
	sys, err := s.repo.FindSystemByName(ctx, row["SystemName"], equip.ID)
	if err != nil {
		return nil, false
	}
	return sys, true
}

func (s *taxonomyService) resolveComponent(ctx context.Context, row map[string]string) (*model.Component, bool) {
	sys, ok := s.resolveSystem(ctx, row)
	if !ok {
		return nil, false
	}
	comp, err := s.repo.FindComponentByName(ctx, row["ComponentName"], sys.ID)
	if err != nil {
		return nil, false
	}
	return comp, true
}

// BulkPasteHierarchy loads headerless TSV where each row is a full chain:
// Area, Line, Equipment, System, Component, SparePart, [Code, Brand, Qty].
// Missing nodes are created on the fly; equipments get an auto-generated tag.
func (s *taxonomyService) BulkPasteHierarchy(ctx context.Context, req dto.BulkPasteHierarchyRequest) (*dto.BulkResult, error) {
	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(req.RawData, "\r\n", "\n")), "\n")
	processed := 0

	for _, rawLine := range lines {
		rawLine = strings.TrimSpace(rawLine)
		if rawLine == "" {
			continue
		}
		cells := strings.Split(rawLine, "\t")
		cell := func(idx int) string {
			if idx < len(cells) {
				return strings.TrimSpace(cells[idx])
			}
			return ""
		}

		areaName := cell(0)
		if areaName == "" {
			continue
		}
		area, err := s.repo.FindAreaByName(ctx, areaName)
		if err != nil {
			area = &model.Area{Name: areaName}
			if err := s.repo.CreateArea(ctx, area); err != nil {
				return nil, err
			}
		}

		lineName := cell(1)
		if lineName == "" {
			continue
		}
		line, err := s.repo.FindLineByName(ctx, lineName, area.ID)
		if err != nil {
			line = &model.Line{Name: lineName, AreaID: area.ID}
			if err := s.repo.CreateLine(ctx, line); err != nil {
				return nil, err
			}
		}

		equipName := cell(2)
		if equipName == "" {
			continue
		}
		equip, err := s.repo.FindEquipmentByName(ctx, equipName, line.ID)
		if err != nil {
			equip = &model.Equipment{
				Name:   equipName,
				Tag:    autoTag(equipName, lineName),
				LineID: line.ID,
			}
			if err := s.repo.CreateEquipment(ctx, equip); err != nil {
				return nil, err
			}
		}

		sysName := cell(3)
		if sysName == "" {
			continue
		}
		sys, err := s.repo.FindSystemByName(ctx, sysName, equip.ID)
		if err != nil {
			sys = &model.System{Name: sysName, EquipmentID: equip.ID}
			if err := s.repo.CreateSystem(ctx, sys); err != nil {
				return nil, err
			}
		}

		compName := cell(4)
		if compName == "" {
			continue
		}
		comp, err := s.repo.FindComponentByName(ctx, compName, sys.ID)
		if err != nil {
			comp = &model.Component{Name: compName, SystemID: sys.ID}
			if err := s.repo.CreateComponent(ctx, comp); err != nil {
				return nil, err
			}
		}

		if spareName := cell(5); spareName != "" {
			qty, _ := strconv.Atoi(cell(8))
			sp := &model.SparePart{
				Name:        spareName,
				Code:        cell(6),
				Brand:       cell(7),
				Quantity:    qty,
				ComponentID: comp.ID,
			}
			if err := s.repo.CreateSparePart(ctx, sp); err != nil {
				return nil, err
			}
		}

		processed++
	}

	log.Info().Int("rows", processed).Msg("jerarquia cargada por pegado masivo")
	return &dto.BulkResult{
		Message: fmt.Sprintf("Procesadas %d filas de jerarquía.", processed),
		Created: processed,
	}, nil
}

// autoTag derives an equipment tag from the first letters of the equipment
// and line names, e.g. "Horno 1" on "Linea A" → "HOR-LIN".
func autoTag(equipName, lineName string) string {
	prefix := func(s string) string {
		r := []rune(s)
		if len(r) > 3 {
			r = r[:3]
		}
		return strings.ToUpper(string(r))
	}
	return prefix(equipName) + "-" + prefix(lineName)
}

// ImportWorkbook applies a template workbook sheet by sheet, in hierarchy
// order so parents exist before their children.
func (s *taxonomyService) ImportWorkbook(ctx context.Context, sheets map[string][]map[string]string) (*dto.ExcelImportResult, error) {
	result := &dto.ExcelImportResult{Sheets: make(map[string]int)}
	for _, sheet := range []string{"Areas", "Lines", "Equipments", "Systems", "Components", "SpareParts"} {
		rows, ok := sheets[sheet]
		if !ok {
			continue
		}
		created, err := s.applyEntityRows(ctx, sheet, rows)
		if err != nil {
			return nil, err
		}
		result.Sheets[sheet] = created
	}
	result.Message = "Importación completada"
	return result, nil
}

// FlattenedExport walks the whole tree into one row per deepest node reached,
// the shape the master export workbook uses.
func (s *taxonomyService) FlattenedExport(ctx context.Context) ([]dto.TaxonomyFlatRow, error) {
	areas, err := s.repo.ListAreas(ctx)
	if err != nil {
		return nil, err
	}
	lines, err := s.repo.ListLines(ctx)
	if err != nil {
		return nil, err
	}
	equips, err := s.repo.ListEquipments(ctx)
	if err != nil {
		return nil, err
	}
	systems, err := s.repo.ListSystems(ctx)
	if err != nil {
		return nil, err
	}
	comps, err := s.repo.ListComponents(ctx)
	if err != nil {
		return nil, err
	}
	spares, err := s.repo.ListSpareParts(ctx)
	if err != nil {
		return nil, err
	}

	linesByArea := make(map[uint][]model.Line)
	for _, l := range lines {
		linesByArea[l.AreaID] = append(linesByArea[l.AreaID], l)
	}
	equipsByLine := make(map[uint][]model.Equipment)
	for _, e := range equips {
		equipsByLine[e.LineID] = append(equipsByLine[e.LineID], e)
	}
	systemsByEquip := make(map[uint][]model.System)
	for _, sys := range systems {
		systemsByEquip[sys.EquipmentID] = append(systemsByEquip[sys.EquipmentID], sys)
	}
	compsBySystem := make(map[uint][]model.Component)
	for _, c := range comps {
		compsBySystem[c.SystemID] = append(compsBySystem[c.SystemID], c)
	}
	sparesByComp := make(map[uint][]model.SparePart)
	for _, sp := range spares {
		sparesByComp[sp.ComponentID] = append(sparesByComp[sp.ComponentID], sp)
	}

	var rows []dto.TaxonomyFlatRow
	for _, a := range areas {
		base := dto.TaxonomyFlatRow{Area: a.Name}
		if a.Description != nil {
			base.AreaDescription = *a.Description
		}
		if len(linesByArea[a.ID]) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, l := range linesByArea[a.ID] {
			rowL := base
			rowL.Line = l.Name
			if len(equipsByLine[l.ID]) == 0 {
				rows = append(rows, rowL)
				continue
			}
			for _, e := range equipsByLine[l.ID] {
				rowE := rowL
				rowE.Equipment = e.Name
				rowE.Tag = e.Tag
				if len(systemsByEquip[e.ID]) == 0 {
					rows = append(rows, rowE)
					continue
				}
				for _, sys := range systemsByEquip[e.ID] {
					rowS := rowE
					rowS.System = sys.Name
					if len(compsBySystem[sys.ID]) == 0 {
						rows = append(rows, rowS)
						continue
					}
					for _, c := range compsBySystem[sys.ID] {
						rowC := rowS
						rowC.Component = c.Name
						if len(sparesByComp[c.ID]) == 0 {
							rows = append(rows, rowC)
							continue
						}
						for _, sp := range sparesByComp[c.ID] {
							rowSP := rowC
							rowSP.SparePart = sp.Name
							rowSP.SpareCode = sp.Code
							rowSP.SpareBrand = sp.Brand
							qty := sp.Quantity
							rowSP.SpareQty = &qty
							rows = append(rows, rowSP)
						}
					}
				}
			}
		}
	}
	return rows, nil
}
