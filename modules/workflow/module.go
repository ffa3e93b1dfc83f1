package workflow

import (
	"github.com/DevTechAI/photosyncwork-sub003/core/cache"
	"github.com/DevTechAI/photosyncwork-sub003/core/database"
	"github.com/DevTechAI/photosyncwork-sub003/core/middleware"
	authzservice "github.com/DevTechAI/photosyncwork-sub003/modules/authz/service"
	teamrepo "github.com/DevTechAI/photosyncwork-sub003/modules/team/repository"
	teamservice "github.com/DevTechAI/photosyncwork-sub003/modules/team/service"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/controller"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/repository"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/router"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/service"

	"github.com/labstack/echo/v4"
)

// Init wires the workflow module and registers its routes. The coordinator
// and the store are returned so the queue handler can run the nightly stage
// advance through the same instances.
func Init(e *echo.Group, db database.IDatabase, c cache.Cache, mw *middleware.Middleware, sink service.NotificationSink) (*service.WorkflowCoordinator, service.EventPersistence) {
	backend := repository.NewEventRepository(db)
	eventCache := repository.NewEventCache(c)
	store := repository.NewEventStore(backend, eventCache)

	roster := teamrepo.NewTeamRepository(db)
	ledger := service.NewAssignmentLedger(sink)
	filter := teamservice.NewAvailabilityFilter()
	engine := service.NewStageEngine()
	authz := authzservice.NewAuthzService(roster)

	coordinator := service.NewWorkflowCoordinator(store, roster, ledger, filter, engine, authz)
	ctrl := controller.NewWorkflowController(coordinator)
	router.NewWorkflowRouter(ctrl).Setup(e, mw)

	return coordinator, store
}
