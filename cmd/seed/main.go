package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"vitalog/database"
	"vitalog/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", utils.DefaultNumUsers, "Number of demo users to create")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])
		if err := utils.SeedUsers(*numUsers); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	case "cleanup":
		if err := utils.CleanupDemoUsers(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	case "count":
		count, err := utils.GetUserCount()
		if err != nil {
			log.Fatalf("Count failed: %v", err)
		}
		log.Printf("Total users: %d", count)
	default:
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage: seed <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  seed     Create demo users with profiles and check-ins (--users N)")
	fmt.Println("  cleanup  Delete all demo users")
	fmt.Println("  count    Print the total user count")
}
