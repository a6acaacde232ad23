// Package config provides settings and starting setups for Jungle games.
//
// Settings:
//
// LoadSettings layers, from weakest to strongest: built-in defaults, an
// optional config file (any format viper reads), a .env file loaded with
// godotenv, and JUNGLE_* environment variables.
//
//	JUNGLE_SETUPS_DIR     directory of setup files (setups)
//	JUNGLE_DEFAULT_SETUP  setup used when none is named (classic)
//	JUNGLE_LOG_LEVEL      debug, info, warn or error (info)
//	JUNGLE_SESSION_TTL    idle time before a session is dropped (24h)
//	JUNGLE_FIRST_SIDE     who opens the built-in classic setup (black)
//
// Setup Format:
//
// Each setup is a JSON file in the setups directory:
//
//	{
//	  "name": "classic",
//	  "description": "Standard opening",
//	  "position": "L5T/1D3C1/R1P1W1E/7/7/7/e1w1p1r/1c3d1/t5l b",
//	  "first": "black"
//	}
//
// The position uses engine notation; "first" is optional and overrides the
// side to move written in the position. The file name without .json is the
// setup ID. A classic setup is always available, from disk if present and
// built in otherwise.
//
// Usage:
//
//	manager, err := config.NewManager("setups", config.WithDefaultSetup("classic"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	setup, err := manager.LoadSetup("rat-race")
//	board, err := setup.Board()
package config
