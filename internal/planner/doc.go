// Package planner decides, for one parsed result stem, which sibling files
// exist and where each one is copied. Plans are pure data; package pipeline
// executes them.
package planner
