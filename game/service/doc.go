// Package service provides the business logic layer for Jungle games.
//
// The service package implements:
//   - Multi-session game management
//   - Starting setup selection
//   - Move processing with turn enforcement
//   - Undo, reset and move history paging
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and expiry.
// SetupCatalog supplies named starting positions.
//
// Architecture:
//
// The service layer sits between the command line and the game engine. Each
// session owns its own engine and a lock; every operation takes that lock, so
// different sessions never block each other.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	setups, _ := config.NewManager("setups")
//	gameService := service.NewGameService(sessionMgr, setups, logger)
//
//	info, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Move(ctx, info.ID, service.MoveRequest{
//		From: engine.Position{Row: 7, Col: 1},
//		To:   engine.Position{Row: 6, Col: 1},
//	})
//
// Rejected moves come back as a MoveResult with Success false and a Reason
// code; errors are reserved for missing sessions and setups.
package service
