package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/iudanet/offlink/internal/cache"
	"github.com/iudanet/offlink/internal/client"
	"github.com/iudanet/offlink/internal/crypto"
	"github.com/iudanet/offlink/internal/models"
	"github.com/iudanet/offlink/internal/storage"
	"github.com/iudanet/offlink/internal/storage/boltdb"
	"github.com/iudanet/offlink/internal/transport/httpapi"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080/graphql", "GraphQL endpoint URL")
	dbPath := flag.String("db", "offlink-queue.db", "Path to local queue database")
	token := flag.String("token", "", "Bearer token for the GraphQL endpoint")
	encrypt := flag.Bool("encrypt", false, "Encrypt queued operations at rest (prompts for passphrase)")
	online := flag.Bool("online", false, "Start in the online state")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Открываем BoltDB очередь
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open queue database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close queue database", "error", err)
		}
	}()

	var queue storage.QueueStorage = boltStorage
	if *encrypt {
		queue, err = openEncryptedQueue(boltStorage, *dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open encrypted queue: %v\n", err)
			os.Exit(1)
		}
	}

	transport := httpapi.NewClient(*serverURL, *token, logger)

	c, err := client.New(client.Config{
		Queue:     queue,
		Cache:     cache.NewMemory(),
		Transport: transport.Forward,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build pipeline: %v\n", err)
		os.Exit(1)
	}

	if *online {
		if err := c.SetConnected(ctx, true); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to go online: %v\n", err)
			os.Exit(1)
		}
	}

	switch command {
	case "status":
		if err := runStatus(ctx, c); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "send":
		if err := runSend(ctx, c, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "flush":
		if err := runFlush(ctx, c); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(1)
	}
}

// runStatus печатает количество мутаций, ожидающих согласования
func runStatus(ctx context.Context, c *client.Client) error {
	pending, err := c.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending mutations: %w", err)
	}
	fmt.Printf("Connectivity: %v\n", c.IsConnected())
	fmt.Printf("Pending mutations: %d\n", pending)
	return nil
}

// runSend подает одну мутацию: send <name> <document> [variables-json]
func runSend(ctx context.Context, c *client.Client, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: send <name> <document> [variables-json]")
	}

	var variables json.RawMessage
	if len(args) >= 3 {
		variables = json.RawMessage(args[2])
	}

	op, err := models.NewOperation(models.Definition{
		Kind:     models.KindMutation,
		Name:     args[0],
		Document: args[1],
	}, variables, nil)
	if err != nil {
		return fmt.Errorf("failed to build operation: %w", err)
	}

	stream, err := c.Submit(ctx, op)
	if err != nil {
		return fmt.Errorf("failed to submit mutation: %w", err)
	}

	if !c.IsConnected() {
		// Offline: поток никогда не излучает, мутация лежит в очереди
		fmt.Println("Offline: mutation queued for replay")
		return nil
	}

	for resp := range stream {
		if resp.TransportFailed() {
			return fmt.Errorf("transport failure: %w", resp.Err)
		}
		fmt.Printf("Response: %s\n", resp.Data)
		for _, e := range resp.Errors {
			fmt.Printf("GraphQL error: %s\n", e.Message)
		}
	}

	return nil
}

// runFlush переводит клиента в online и ждет, пока очередь опустеет
func runFlush(ctx context.Context, c *client.Client) error {
	if err := c.SetConnected(ctx, true); err != nil {
		return fmt.Errorf("failed to go online: %w", err)
	}

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		pending, err := c.PendingCount(ctx)
		if err != nil {
			return fmt.Errorf("failed to count pending mutations: %w", err)
		}
		if pending == 0 {
			fmt.Println("Queue drained")
			return nil
		}
		time.Sleep(200 * time.Millisecond)
	}

	pending, err := c.PendingCount(ctx)
	if err != nil {
		return err
	}
	return fmt.Errorf("queue not drained, %d mutations still pending", pending)
}

// openEncryptedQueue запрашивает passphrase и оборачивает хранилище
// шифрующим слоем. Соль хранится рядом с базой.
func openEncryptedQueue(inner storage.QueueStorage, dbPath string) (storage.QueueStorage, error) {
	fmt.Print("Passphrase: ")
	passphraseBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	salt, err := loadOrCreateSalt(dbPath + ".salt")
	if err != nil {
		return nil, err
	}

	key, err := crypto.DeriveKey(string(passphraseBytes), salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive queue key: %w", err)
	}

	return storage.NewEncryptedQueue(inner, key)
}

// loadOrCreateSalt читает соль из sidecar-файла, создавая ее при первом запуске
func loadOrCreateSalt(path string) ([]byte, error) {
	salt, err := os.ReadFile(path)
	if err == nil {
		return salt, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read salt file: %w", err)
	}

	salt, err = crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, salt, 0600); err != nil {
		return nil, fmt.Errorf("failed to write salt file: %w", err)
	}
	return salt, nil
}

func printUsage() {
	fmt.Println("Usage: offlink [flags] <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  status                                  Show connectivity and pending queue length")
	fmt.Println("  send <name> <document> [variables-json] Submit a mutation (queued while offline)")
	fmt.Println("  flush                                   Go online and replay the queue")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}

func printVersion() {
	fmt.Printf("offlink %s\n", Version)
	fmt.Printf("  build date: %s\n", BuildDate)
	fmt.Printf("  git commit: %s\n", GitCommit)
}
