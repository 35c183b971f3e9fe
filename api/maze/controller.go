// Package mazeapi handles maze generation and retrieval requests.
package mazeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	fetchTimeout = 2 * time.Second

	// maxDimension bounds requested grids; generation work grows with
	// width*height.
	maxDimension = 200
)

// MazeController manages maze generation and retrieval operations.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("nil maze service")
	}
	return &MazeController{mazeService: ms}, nil
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.generate)
		mazes.GET("/:ID", mc.document)
		mazes.GET("/:ID/solution", mc.solution)
		mazes.GET("/:ID/render", mc.render)
	}
}

// generate handles maze generation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Width > maxDimension || request.Height > maxDimension {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("width and height must be at most %d", maxDimension),
		})
		return
	}

	entry, err := config.ParsePoint(request.Entry)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "entry must be a col,row pair"})
		return
	}
	exit, err := config.ParsePoint(request.Exit)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "exit must be a col,row pair"})
		return
	}

	summary, err := mc.mazeService.Create(ctx, &i.MazeSpec{
		Width:   request.Width,
		Height:  request.Height,
		Entry:   entry,
		Exit:    exit,
		Perfect: request.Perfect,
		Algo:    request.Algo,
		Seed:    request.Seed,
	})
	if err != nil {
		if isSpecError(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, &GenerateResponse{
		ID:       summary.ID,
		Width:    summary.Width,
		Height:   summary.Height,
		Solvable: summary.Solvable,
	})
}

// document serves the encoded document of a stored maze as plain text.
func (mc *MazeController) document(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	document, err := mc.mazeService.Document(timeoutCtx, id)
	if err != nil {
		replyFetchError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, document)
}

// solution serves the solved walk of a stored maze.
func (mc *MazeController) solution(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	solution, err := mc.mazeService.Solve(timeoutCtx, id)
	if err != nil {
		replyFetchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &SolutionResponse{
		Solvable: solution.Solvable,
		Length:   solution.Length,
		Moves:    solution.Moves,
	})
}

// render serves a stored maze drawn as colored terminal text.
func (mc *MazeController) render(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	theme, err := strconv.Atoi(ctx.DefaultQuery("theme", "0"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "theme must be an integer"})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	art, err := mc.mazeService.Render(timeoutCtx, id, theme)
	if err != nil {
		replyFetchError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, art)
}

// mazeID parses the ID path parameter, replying 400 on a bad one.
func mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}

// isSpecError reports whether err blames the maze spec rather than the
// server.
func isSpecError(err error) bool {
	return errors.Is(err, maze.ErrInvalidDimensions) ||
		errors.Is(err, maze.ErrLogoDoesNotFit) ||
		errors.Is(err, maze.ErrInvalidEndpoint) ||
		errors.Is(err, i.ErrUnknownAlgo)
}

func replyFetchError(ctx *gin.Context, err error) {
	if errors.Is(err, i.ErrMazeNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading maze"})
}
