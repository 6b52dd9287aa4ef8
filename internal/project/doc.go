// Package project implements the one-time initialization and the update flow
// for a claude-workflow project.
//
// Init creates the docs/ and planning/templates/ layout in a target root,
// writes the agent instructions file for the chosen agent, distributes the
// packaged templates, and installs the helper script. Update refreshes an
// already-initialized project: new templates are added without touching
// existing files, the helper script is replaced with the latest packaged
// copy, and migration instructions are written.
//
// The package also manages the .claude-workflow/init.yml settings snapshot,
// which records the agent and tool version a project was initialized with.
package project
