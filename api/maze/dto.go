// Package mazeapi provides structures and utilities for generating and
// retrieving mazes over HTTP.
package mazeapi

import (
	"github.com/google/uuid"
)

// GenerateRequest represents a request to generate a new maze.
// Entry and exit are col,row pairs, matching the maze config file form.
type GenerateRequest struct {
	Width   int    `json:"width" binding:"required"`
	Height  int    `json:"height" binding:"required"`
	Entry   string `json:"entry" binding:"required"`
	Exit    string `json:"exit" binding:"required"`
	Perfect bool   `json:"perfect"`
	Algo    string `json:"algo"`
	Seed    int64  `json:"seed"`
}

// GenerateResponse represents the summary of a newly generated maze.
type GenerateResponse struct {
	ID       uuid.UUID `json:"id"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Solvable bool      `json:"solvable"`
}

// SolutionResponse represents the solved entry to exit walk of a maze.
type SolutionResponse struct {
	Solvable bool   `json:"solvable"`
	Length   int    `json:"length"`
	Moves    string `json:"moves"`
}
