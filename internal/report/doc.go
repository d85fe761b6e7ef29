// Package report renders run results for humans (text), machines (json) and
// AI assistant prompts (the convention catalog as a paste-ready block).
package report
