// Package main implements the interactive storefront browser: it signs the
// user in against the remote API, keeps the session token on disk and lets
// the user search, sort and page through the product catalog.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/avdeenkov/shopview/internal/client/api"
	"github.com/avdeenkov/shopview/internal/client/catalog"
	"github.com/avdeenkov/shopview/internal/client/session"
	"github.com/avdeenkov/shopview/internal/logger"
	"github.com/avdeenkov/shopview/internal/models"
)

var (
	version   string
	buildDate string
)

// printPage renders the current page of the derived view.
func printPage(view *catalog.View) {
	page := view.ComputeView()
	count := view.PageCount()

	if count == 0 {
		fmt.Println("No products to show.")
		return
	}
	for _, p := range page {
		fmt.Printf("%d. %s - $%.2f\n", p.ID, p.Title, p.Price)
	}
	if len(page) == 0 {
		fmt.Println("(empty page)")
	}
	fmt.Printf("Page %d of %d (sorted by price, %s)\n", view.Page(), count, view.SortDirection())
}

// promptLine reads one line after printing the label.
func promptLine(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// promptRegistration collects the registration form field by field.
func promptRegistration(scanner *bufio.Scanner) models.RegistrationForm {
	form := models.RegistrationForm{
		FirstName: promptLine(scanner, "First name: "),
		LastName:  promptLine(scanner, "Last name: "),
		Gender:    promptLine(scanner, "Gender: "),
		Email:     promptLine(scanner, "Email: "),
		Phone:     promptLine(scanner, "Phone: "),
		Username:  promptLine(scanner, "Username: "),
		Password:  promptLine(scanner, "Password: "),
		BirthDate: promptLine(scanner, "Birth date (YYYY-MM-DD): "),
	}
	form.Age, _ = strconv.Atoi(promptLine(scanner, "Age: "))
	return form
}

// repl runs the interactive shell loop.
func repl(ctrl *session.Controller, view *catalog.View) {
	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	if ctrl.Restore(ctx) == session.Authenticated {
		fmt.Println("Welcome back! You are logged in.")
	} else {
		fmt.Println("Not logged in. Type 'login <username> <password>' or 'register'.")
	}

	for {
		fmt.Print("shopview> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, login <username> <password>, register, list, search [text], sort, page <n>, next, prev, logout, exit")
		case "login":
			if len(args) < 3 {
				fmt.Println("Usage: login <username> <password>")
				continue
			}
			if err := ctrl.Login(ctx, args[1], args[2]); err != nil {
				fmt.Println("Invalid email or password")
				continue
			}
			fmt.Println("Welcome! You are logged in.")
			printPage(view)
		case "register":
			form := promptRegistration(scanner)
			if err := ctrl.Register(ctx, form); err != nil {
				fmt.Println("Registration failed:", err)
				continue
			}
			fmt.Println("User registered successfully! Use 'login' to sign in.")
		case "list":
			if ctrl.State() != session.Authenticated {
				fmt.Println("Please log in first.")
				continue
			}
			printPage(view)
		case "search":
			if ctrl.State() != session.Authenticated {
				fmt.Println("Please log in first.")
				continue
			}
			query := strings.TrimSpace(strings.TrimPrefix(line, "search"))
			view.SetQuery(query)
			view.SetPage(1)
			printPage(view)
		case "sort":
			if ctrl.State() != session.Authenticated {
				fmt.Println("Please log in first.")
				continue
			}
			view.ToggleSortDirection()
			printPage(view)
		case "page":
			if ctrl.State() != session.Authenticated {
				fmt.Println("Please log in first.")
				continue
			}
			if len(args) < 2 {
				fmt.Println("Usage: page <n>")
				continue
			}
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				fmt.Println("Page number must be a positive integer")
				continue
			}
			view.SetPage(n)
			printPage(view)
		case "next":
			if ctrl.State() != session.Authenticated {
				fmt.Println("Please log in first.")
				continue
			}
			view.SetPage(view.Page() + 1)
			printPage(view)
		case "prev":
			if ctrl.State() != session.Authenticated {
				fmt.Println("Please log in first.")
				continue
			}
			view.SetPage(view.Page() - 1)
			printPage(view)
		case "logout":
			ctrl.Logout()
			fmt.Println("Logged out.")
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

// main parses command-line flags and starts the shell.
func main() {
	var (
		baseURL   string
		tokenFile string
		logLevel  string
		showVer   bool
	)

	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.StringVar(&tokenFile, "token-file", "session.json", "path to the session token file")
	flag.StringVar(&logLevel, "log", "error", "log level")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("shopview Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	log := logger.New()
	if err := log.Init(logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Log.Sync() }()

	apiClient := api.New(baseURL, http.DefaultClient, log.Log.Named("api"))
	tokens := &session.FileTokenStore{Path: tokenFile}
	view := catalog.New(catalog.DefaultPageSize)
	ctrl := session.NewController(apiClient, tokens, view, log.Log.Named("session"))

	repl(ctrl, view)
}
