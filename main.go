package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"inkwell/app/config"
	"inkwell/app/repositories"
	"inkwell/app/routes"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}
	cfg := config.Load()

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve(cfg, os.Args[2:])
	case "seed":
		seed(cfg, os.Args[2:])
	case "db":
		handleDbCommand(cfg, os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve [--addr <addr>]          Run the blog API server.
  seed  [--count <n>] [--password <pw>]
                                 Populate the database with synthetic users.
  db    <init|clean|backup|restore>
                                 Database maintenance commands.

The database path defaults to data/badger and can be overridden with the
INKWELL_DB_PATH environment variable (a .env file is honored).
`
	fmt.Println(helpText)
}

// serve opens the database and runs the HTTP API server.
func serve(cfg config.Config, args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", cfg.HTTPAddress(), "listen address")
	fs.Parse(args)

	db := openDB(cfg.DBPath)
	defer db.Close()

	router := routes.SetupRoutes(db)

	log.Printf("Starting blog API server on %s", *addr)
	if err := http.ListenAndServe(*addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// seed bulk-creates synthetic users with a shared default password. Demo and
// test data population only; users go through the account service so hashing
// and uniqueness rules hold.
func seed(cfg config.Config, args []string) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	count := fs.Int("count", 50, "number of users to create")
	password := fs.String("password", "password123", "default password for all seeded users")
	fs.Parse(args)

	db := openDB(cfg.DBPath)
	defer db.Close()

	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	userService := services.NewUserService(userRepo, postRepo)

	// Local RNG instance; keeps randomness explicit.
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	created := 0
	for attempts := 0; created < *count && attempts < *count*10; attempts++ {
		first := firstNames[r.Intn(len(firstNames))]
		last := lastNames[r.Intn(len(lastNames))]
		username := fmt.Sprintf("%s%s%d", strings.ToLower(first), strings.ToLower(last), r.Intn(10000))
		email := username + "@example.com"
		name := first + " " + last

		_, err := userService.CreateUser(username, email, name, *password)
		if errors.Is(err, repositories.ErrDuplicate) {
			continue
		}
		if err != nil {
			log.Fatalf("Failed to create user %s: %v", username, err)
		}
		created++
	}

	fmt.Printf("Successfully created %d users.\n", created)
}

func openDB(path string) *badger.DB {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	return db
}

var firstNames = []string{
	"Alice", "Ben", "Carol", "David", "Elena", "Frank", "Grace", "Henry",
	"Irene", "Jonas", "Karen", "Liam", "Maria", "Nate", "Olga", "Peter",
	"Quinn", "Rosa", "Sam", "Tara", "Umar", "Vera", "Walter", "Xenia",
	"Yusuf", "Zoe",
}

var lastNames = []string{
	"Adams", "Baker", "Chen", "Diaz", "Evans", "Fischer", "Garcia", "Huang",
	"Ivanov", "Jones", "Kim", "Lopez", "Meyer", "Novak", "Olsen", "Patel",
	"Quinn", "Rossi", "Schmidt", "Tanaka", "Ueda", "Vargas", "Weber", "Young",
	"Zhang",
}
