// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client is a small command-line client of the restaurant directory
// API.
//
// Usage:
//
//	client [-a address] [-u username] [-p password] <command> [argument]
//
// Commands:
//
//	version              print the server version
//	restaurants          list all restaurants
//	search <query>       search restaurants by name, dish, cuisine or category
//	menu <restaurant_id> list the menu of a restaurant
//
// Every command except version logs in with -u/-p (or the DIRECTORY_USERNAME
// and DIRECTORY_PASSWORD environment variables) and logs out afterwards.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/go-restaurant-directory/internal/adapter"
	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/models"
)

var errUsage = errors.New("usage: client [-a address] [-u username] [-p password] version|restaurants|search <query>|menu <restaurant_id>")

func main() {
	address := flag.String("a", "localhost:8080", "server address")
	username := flag.String("u", os.Getenv("DIRECTORY_USERNAME"), "username or email")
	password := flag.String("p", os.Getenv("DIRECTORY_PASSWORD"), "password")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Parse()

	log := logger.NewLogger("restaurant-directory-client")

	client, err := adapter.NewHTTPServerAdapter(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	result, err := run(context.Background(), client, *username, *password, flag.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(result); err != nil {
		log.Fatal().Err(err).Msg("error printing result")
	}
}

func run(ctx context.Context, client adapter.ServerAdapter, username, password string, args []string) (any, error) {
	if len(args) == 0 {
		return nil, errUsage
	}

	if args[0] == "version" {
		return client.Version(ctx)
	}

	if _, err := client.Login(ctx, models.LoginRequest{Username: username, Password: password}); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	defer func() {
		_ = client.Logout(ctx)
	}()

	switch {
	case args[0] == "restaurants":
		return client.ListRestaurants(ctx)
	case args[0] == "search" && len(args) == 2:
		return client.SearchRestaurants(ctx, models.RestaurantSearch{Query: args[1]})
	case args[0] == "menu" && len(args) == 2:
		restaurantID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid restaurant id %q: %w", args[1], err)
		}
		return client.ListMenuItems(ctx, restaurantID)
	default:
		return nil, errUsage
	}
}
