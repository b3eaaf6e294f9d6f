// Package solverapi exposes solver runs and the leaderboard over HTTP.
package solverapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	dmn "github.com/beka-birhanu/micromouse/domain"
	"github.com/beka-birhanu/micromouse/maze"
	"github.com/beka-birhanu/micromouse/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RunController manages solver run operations.
type RunController struct {
	runner        i.Runner
	runRepo       i.RunRepo
	leaderboard   i.Leaderboard
	defaultWidth  int
	defaultHeight int
	boardSize     int64
}

// Config holds the dependencies for a RunController.
type Config struct {
	Runner        i.Runner
	RunRepo       i.RunRepo
	Leaderboard   i.Leaderboard
	DefaultWidth  int   // maze width when the request omits one
	DefaultHeight int   // maze height when the request omits one
	BoardSize     int64 // number of leaderboard entries served
}

// NewRunController initializes a RunController.
func NewRunController(c *Config) (*RunController, error) {
	return &RunController{
		runner:        c.Runner,
		runRepo:       c.RunRepo,
		leaderboard:   c.Leaderboard,
		defaultWidth:  c.DefaultWidth,
		defaultHeight: c.DefaultHeight,
		boardSize:     c.BoardSize,
	}, nil
}

// Register registers the solver routes.
func (rc *RunController) Register(route *gin.RouterGroup) {
	solver := route.Group("/solver")
	{
		solver.POST("/runs", rc.run)
		solver.GET("/runs/:ID", rc.runInfo)
		solver.GET("/leaderboard", rc.top)
	}
}

// run handles run execution requests.
func (rc *RunController) run(ctx *gin.Context) {
	var request RunRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, seed, source, err := rc.resolveMaze(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := rc.runner.Execute(ctx, m, seed, source)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while executing run"})
		return
	}

	ctx.JSON(http.StatusCreated, runResponseFrom(run))
}

// resolveMaze turns a request into a maze, either parsed from the
// uploaded wall map or generated from dimensions and seed.
func (rc *RunController) resolveMaze(request *RunRequest) (*maze.Maze, int64, string, error) {
	if request.Maze != "" {
		m, err := maze.Parse(strings.NewReader(request.Maze))
		if err != nil {
			return nil, 0, "", err
		}
		return m, 0, dmn.SourceUploaded, nil
	}

	width, height := request.Width, request.Height
	if width == 0 {
		width = rc.defaultWidth
	}
	if height == 0 {
		height = rc.defaultHeight
	}
	seed := time.Now().UnixNano()
	if request.Seed != nil {
		seed = *request.Seed
	}

	m, err := maze.Generate(width, height, seed)
	if err != nil {
		return nil, 0, "", err
	}
	return m, seed, dmn.SourceGenerated, nil
}

// runInfo retrieves the report of a specific run.
func (rc *RunController) runInfo(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	run, err := rc.runRepo.ByID(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No Run"})
		return
	}

	ctx.JSON(http.StatusOK, runResponseFrom(run))
}

// top lists the best runs by fast-path length.
func (rc *RunController) top(ctx *gin.Context) {
	timeoutCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	entries, err := rc.leaderboard.Top(timeoutCtx, rc.boardSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading leaderboard"})
		return
	}

	response := make([]LeaderboardEntryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, LeaderboardEntryResponse{RunID: e.RunID, FastMoves: e.FastMoves})
	}

	ctx.JSON(http.StatusOK, response)
}
