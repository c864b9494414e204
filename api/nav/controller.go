// Package navapi exposes navigation runs over HTTP.
package navapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/davidvelascogarcia/hns-go/service/i"
)

// Controller serves run launch and report endpoints.
type Controller struct {
	runs i.NavigationService
}

// New initializes a run controller.
func New(runs i.NavigationService) *Controller {
	return &Controller{
		runs: runs,
	}
}

// Register registers run routes.
func (c *Controller) Register(route *gin.RouterGroup) {
	runs := route.Group("/runs")
	{
		runs.POST("/", c.launch)
		runs.GET("/:ID", c.report)
	}
}

// launch handles run creation requests.
func (c *Controller) launch(ctx *gin.Context) {
	var request LaunchRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := c.runs.Launch(i.RunParams{
		MapFile:  request.Map,
		StartRow: request.Init.Row,
		StartCol: request.Init.Col,
		GoalRow:  request.Goal.Row,
		GoalCol:  request.Goal.Col,
		Actuator: request.Actuator,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusAccepted, LaunchResponse{ID: id.String()})
}

// report retrieves the record of a specific run.
func (c *Controller) report(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	run, err := c.runs.Report(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no such run"})
		return
	}

	ctx.JSON(http.StatusOK, run)
}
