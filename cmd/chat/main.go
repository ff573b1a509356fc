package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"

	"chat-demo-backend/internal/chat"
	"chat-demo-backend/internal/client"
	"chat-demo-backend/internal/dto"
	"chat-demo-backend/internal/identity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// role sent with messages typed by the user
const userRole = 0

func main() {
	configPath := flag.String("config", "chat.yaml", "path to the client config file")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatal("Failed to create logger: ", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg, err := chat.LoadClientConfig(*configPath)
	if err != nil {
		sugar.Fatalw("Failed to load config", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, sugar); err != nil && !errors.Is(err, context.Canceled) {
		sugar.Fatalw("Chat client failed", "error", err)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

func run(ctx context.Context, cfg chat.ClientConfig, logger *zap.SugaredLogger) error {
	api := client.New(cfg.BaseURL, client.Timeout(cfg.Timeout))
	if _, err := api.Health(ctx); err != nil {
		return fmt.Errorf("backend at %s is not reachable: %w", cfg.BaseURL, err)
	}

	in := bufio.NewScanner(os.Stdin)
	who := identity.NewProvider(cfg.IdentityFile, logger)
	for who.Username() == "" {
		fmt.Print("Username: ")
		if !in.Scan() {
			return in.Err()
		}
		if err := who.SetUsername(in.Text()); err != nil {
			fmt.Println(err)
		}
	}

	conversation, err := chat.FindOrCreateConversation(ctx, api, cfg.Conversation)
	if err != nil {
		return err
	}

	var paused atomic.Bool
	tracker := chat.NewTracker(api, conversation.ID,
		chat.PollInterval(cfg.PollInterval),
		chat.WithVisibility(chat.VisibilityFunc(paused.Load)),
		chat.WithLogger(logger),
		chat.OnChange(printTranscript),
	)
	defer tracker.Stop()

	fmt.Printf("Joined %q as %s. /help lists commands.\n", cfg.Conversation, who.Username())

	done := make(chan error, 1)
	go func() { done <- tracker.Run(ctx) }()

	lines := make(chan string)
	go func() {
		defer close(lines)
		for in.Scan() {
			lines <- in.Text()
		}
	}()

	s := session{api: api, tracker: tracker, who: who, conversationID: conversation.ID, paused: &paused}
	for {
		select {
		case <-ctx.Done():
			return <-done
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			quit, err := s.handle(ctx, line)
			if err != nil {
				fmt.Println("error:", err)
			}
			if quit {
				return nil
			}
		}
	}
}

type session struct {
	api            *client.Client
	tracker        *chat.Tracker
	who            *identity.Provider
	conversationID uuid.UUID
	paused         *atomic.Bool
}

// handle runs one input line and reports whether the client should exit.
// Every mutation is followed by an unconditional reload.
func (s *session) handle(ctx context.Context, line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if !strings.HasPrefix(line, "/") {
		return false, s.send(ctx, line)
	}

	cmd, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)
	switch cmd {
	case "/quit":
		return true, nil
	case "/help":
		fmt.Println("/edit <id> <text>  /delete <id>  /name <username>  /pause  /resume  /reload  /quit")
	case "/pause":
		s.paused.Store(true)
		fmt.Println("polling paused")
	case "/resume":
		s.paused.Store(false)
		fmt.Println("polling resumed")
	case "/reload":
		return false, s.tracker.Reload(ctx)
	case "/name":
		if err := s.who.SetUsername(args); err != nil {
			return false, err
		}
		fmt.Println("username set to", s.who.Username())
	case "/edit":
		prefix, text, _ := strings.Cut(args, " ")
		id, err := s.resolve(prefix)
		if err != nil {
			return false, err
		}
		if _, err := s.api.UpdateMessage(ctx, id, dto.UpdateMessage{Text: dto.Set(strings.TrimSpace(text))}); err != nil {
			return false, err
		}
		return false, s.tracker.Reload(ctx)
	case "/delete":
		id, err := s.resolve(args)
		if err != nil {
			return false, err
		}
		if _, err := s.api.DeleteMessage(ctx, id); err != nil {
			return false, err
		}
		return false, s.tracker.Reload(ctx)
	default:
		return false, fmt.Errorf("unknown command %s", cmd)
	}
	return false, nil
}

func (s *session) send(ctx context.Context, text string) error {
	role := userRole
	name := s.who.Username()
	_, err := s.api.CreateMessage(ctx, dto.CreateMessage{
		Text:           text,
		ConversationID: &s.conversationID,
		Role:           &role,
		CreatorName:    &name,
	})
	if err != nil {
		return err
	}
	return s.tracker.Reload(ctx)
}

// resolve finds the message of the current transcript whose id starts with prefix
func (s *session) resolve(prefix string) (uuid.UUID, error) {
	if prefix == "" {
		return uuid.Nil, errors.New("message id is required")
	}

	var found []uuid.UUID
	for _, m := range s.tracker.Messages() {
		if strings.HasPrefix(m.ID.String(), prefix) {
			found = append(found, m.ID)
		}
	}
	switch len(found) {
	case 0:
		return uuid.Nil, fmt.Errorf("no message with id %s", prefix)
	case 1:
		return found[0], nil
	}
	return uuid.Nil, fmt.Errorf("id %s is ambiguous", prefix)
}

func printTranscript(messages []dto.Message) {
	fmt.Println("----")
	for _, m := range messages {
		fmt.Printf("[%s %s] %s: %s\n",
			m.ID.String()[:8],
			m.CreatedAt.Local().Format("15:04:05"),
			orDefault(m.CreatorName, "anonymous"),
			orDefault(m.Text, ""),
		)
	}
}

func orDefault(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
