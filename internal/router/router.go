package router

import (
	"time"

	"github.com/bryamlazo166/cmms-app/internal/config"
	"github.com/bryamlazo166/cmms-app/internal/handler"
	"github.com/bryamlazo166/cmms-app/internal/middleware"
	"github.com/bryamlazo166/cmms-app/internal/repository"
	"github.com/bryamlazo166/cmms-app/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	taxonomyRepo := repository.NewTaxonomyRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	technicianRepo := repository.NewTechnicianRepository(db)
	toolRepo := repository.NewToolRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	workOrderRepo := repository.NewWorkOrderRepository(db)
	purchasingRepo := repository.NewPurchasingRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	taxonomySvc := service.NewTaxonomyService(taxonomyRepo)
	catalogSvc := service.NewCatalogService(providerRepo, technicianRepo, toolRepo)
	warehouseSvc := service.NewWarehouseService(warehouseRepo)
	classificationSvc := service.NewClassificationService(warehouseRepo)
	noticeSvc := service.NewNoticeService(noticeRepo, workOrderRepo, taxonomyRepo)
	workOrderSvc := service.NewWorkOrderService(workOrderRepo, noticeRepo, warehouseRepo, toolRepo, technicianRepo, providerRepo, taxonomyRepo)
	kpiSvc := service.NewKPIService(workOrderRepo, taxonomyRepo)
	purchasingSvc := service.NewPurchasingService(purchasingRepo, workOrderRepo, warehouseRepo)
	dashboardSvc := service.NewDashboardService(workOrderRepo, noticeRepo, technicianRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	taxonomyH := handler.NewTaxonomyHandler(taxonomySvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	warehouseH := handler.NewWarehouseHandler(warehouseSvc, classificationSvc)
	noticesH := handler.NewNoticesHandler(noticeSvc)
	workOrdersH := handler.NewWorkOrdersHandler(workOrderSvc)
	purchasingH := handler.NewPurchasingHandler(purchasingSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc, rdb, cfg.DashboardCacheTTL)
	reportsH := handler.NewReportsHandler(kpiSvc, warehouseSvc, workOrderSvc, taxonomySvc, cfg.PDFStoragePath)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		api.GET("/dashboard-stats", dashboardH.Stats)

		// Taxonomy
		api.GET("/areas", taxonomyH.ListAreas)
		api.POST("/areas", taxonomyH.CreateArea)
		api.PUT("/areas/:id", taxonomyH.UpdateArea)
		api.DELETE("/areas/:id", taxonomyH.DeleteArea)

		api.GET("/lines", taxonomyH.ListLines)
		api.POST("/lines", taxonomyH.CreateLine)
		api.PUT("/lines/:id", taxonomyH.UpdateLine)
		api.DELETE("/lines/:id", taxonomyH.DeleteLine)

		api.GET("/equipments", taxonomyH.ListEquipments)
		api.POST("/equipments", taxonomyH.CreateEquipment)
		api.PUT("/equipments/:id", taxonomyH.UpdateEquipment)
		api.DELETE("/equipments/:id", taxonomyH.DeleteEquipment)

		api.GET("/systems", taxonomyH.ListSystems)
		api.POST("/systems", taxonomyH.CreateSystem)
		api.PUT("/systems/:id", taxonomyH.UpdateSystem)
		api.DELETE("/systems/:id", taxonomyH.DeleteSystem)

		api.GET("/components", taxonomyH.ListComponents)
		api.POST("/components", taxonomyH.CreateComponent)
		api.PUT("/components/:id", taxonomyH.UpdateComponent)
		api.DELETE("/components/:id", taxonomyH.DeleteComponent)

		api.GET("/spare-parts", taxonomyH.ListSpareParts)
		api.POST("/spare-parts", taxonomyH.CreateSparePart)
		api.PUT("/spare-parts/:id", taxonomyH.UpdateSparePart)
		api.DELETE("/spare-parts/:id", taxonomyH.DeleteSparePart)

		// Bulk load
		api.POST("/bulk-paste", taxonomyH.BulkPaste)
		api.POST("/bulk-paste-hierarchy", taxonomyH.BulkPasteHierarchy)
		api.POST("/upload-excel", reportsH.UploadExcel)
		api.GET("/download-template", reportsH.DownloadTemplate)
		api.GET("/export-data", reportsH.ExportTaxonomy)

		// Catalogs
		api.GET("/providers", catalogH.ListProviders)
		api.POST("/providers", catalogH.CreateProvider)
		api.PUT("/providers/:id", catalogH.UpdateProvider)
		api.DELETE("/providers/:id", catalogH.DeactivateProvider)

		api.GET("/technicians", catalogH.ListTechnicians)
		api.POST("/technicians", catalogH.CreateTechnician)
		api.PUT("/technicians/:id", catalogH.UpdateTechnician)
		api.DELETE("/technicians/:id", catalogH.ToggleTechnician)

		api.GET("/tools", catalogH.ListTools)
		api.POST("/tools", catalogH.CreateTool)
		api.GET("/tools/:id", catalogH.GetTool)
		api.PUT("/tools/:id", catalogH.UpdateTool)
		api.DELETE("/tools/:id", catalogH.ToggleTool)

		// Warehouse
		api.GET("/warehouse", warehouseH.ListItems)
		api.POST("/warehouse", warehouseH.CreateItem)
		api.PUT("/warehouse/:id", warehouseH.UpdateItem)
		api.DELETE("/warehouse/:id", warehouseH.ToggleItem)
		api.POST("/warehouse/movements", warehouseH.RegisterMovement)
		api.GET("/warehouse/:id/movements", warehouseH.ListMovements)
		api.POST("/warehouse/calculate", warehouseH.RecalculateClassification)
		api.GET("/warehouse/export", reportsH.ExportWarehouse)
		api.GET("/warehouse/export-kardex", reportsH.ExportKardex)

		// Notices
		api.GET("/notices", noticesH.List)
		api.POST("/notices", noticesH.Create)
		api.GET("/notices/:id", noticesH.Get)
		api.PUT("/notices/:id", noticesH.Update)
		api.DELETE("/notices/:id", noticesH.Delete)

		// Work orders
		api.GET("/work-orders", workOrdersH.List)
		api.POST("/work-orders", workOrdersH.Create)
		api.GET("/work-orders/feedback", workOrdersH.Feedback)
		api.GET("/work-orders/:id", workOrdersH.Get)
		api.PUT("/work-orders/:id", workOrdersH.Update)
		api.DELETE("/work-orders/:id", workOrdersH.Delete)
		api.GET("/work-orders/:id/pdf", reportsH.WorkOrderPDF)
		api.GET("/export-ots", reportsH.ExportWorkOrders)

		// OT sub-resources keep their historical underscore paths
		api.GET("/work_orders/:id/personnel", workOrdersH.ListPersonnel)
		api.POST("/work_orders/:id/personnel", workOrdersH.SavePersonnel)
		api.PUT("/work_orders/:id/personnel/:personnel_id", workOrdersH.UpdatePersonnel)
		api.DELETE("/work_orders/:id/personnel/:personnel_id", workOrdersH.DeletePersonnel)

		api.GET("/work_orders/:id/materials", workOrdersH.ListMaterials)
		api.POST("/work_orders/:id/materials", workOrdersH.AddMaterial)
		api.DELETE("/work_orders/:id/materials/:material_id", workOrdersH.RemoveMaterial)

		// Predictive helpers
		api.GET("/predictive/ot-suggestions", workOrdersH.Suggestions)

		// Reliability KPIs
		api.GET("/reports/kpis", reportsH.KPIs)

		// Purchasing
		api.GET("/purchase-requests", purchasingH.ListRequests)
		api.POST("/purchase-requests", purchasingH.CreateRequest)
		api.GET("/purchase-orders", purchasingH.ListOrders)
		api.POST("/purchase-orders", purchasingH.CreateOrder)
		api.POST("/purchase-orders/:id/close", purchasingH.CloseOrder)
		api.GET("/list-spare-parts", purchasingH.ListPickerItems)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
