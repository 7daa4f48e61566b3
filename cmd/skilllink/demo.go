package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/skilllink-dev/skilllink"
	apperrors "github.com/skilllink-dev/skilllink/internal/errors"
	"github.com/skilllink-dev/skilllink/pkg/auth"
	"github.com/skilllink-dev/skilllink/pkg/chat"
	"github.com/skilllink-dev/skilllink/pkg/i18n"
	"github.com/skilllink-dev/skilllink/pkg/toast"
)

func demoCmd() *cobra.Command {
	var (
		dataDir    string
		gatewayURL string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted walkthrough of the state model",
		Long: `Run a scripted walkthrough: register, switch language, browse
the job feed, apply to a listing, exchange a chat message, and
log out. Settings come from skilllink.json when present.

With --data-dir, state persists between runs:
  skilllink demo --data-dir=data

With --gateway, chat goes over a running gateway's WebSocket
instead of the in-process simulated party:
  skilllink demo --gateway=http://localhost:8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(dataDir, gatewayURL)
		},
	}

	cmd.Flags().StringVarP(&dataDir, "data-dir", "d", "", "Directory for persisted state (empty = in-memory)")
	cmd.Flags().StringVarP(&gatewayURL, "gateway", "g", "", "Base URL of a running gateway for chat (empty = in-process)")

	return cmd
}

func runDemo(dataDir, gatewayURL string) error {
	printBanner()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.DataDir = dataDir

	opts := skilllink.Options{Config: cfg}

	if gatewayURL != "" {
		transport, err := chat.DialWS(context.Background(),
			"ws"+strings.TrimPrefix(gatewayURL, "http")+"/ws/chat", nil)
		if err != nil {
			return apperrors.New("E141").
				WithDetail("Could not reach the gateway at "+gatewayURL).
				WithSuggestion("Start it with 'skilllink serve' or drop --gateway").
				Wrap(err)
		}
		opts.ChatTransport = transport
	}

	app, err := skilllink.New(opts)
	if err != nil {
		return err
	}
	defer app.Close()

	cancel := app.Toasts.Subscribe(func(t toast.Toast) {
		fmt.Printf("  [%s] %s\n", t.Level, t.Message)
	})
	defer cancel()

	ctx := context.Background()

	// Authentication.
	if app.Auth.IsAuthenticated() {
		session, _ := app.Auth.CurrentUser()
		success("Restored session for %s", session.DisplayName)
	} else {
		info("Registering demo account...")
		if err := app.Auth.RegisterWithEmail(ctx, "demo@skilllink.dev", "demo-password"); err != nil {
			// Rejected credentials are part of the walkthrough;
			// anything else means the app itself is broken.
			if !auth.IsAuthError(err) {
				return err
			}
			info("Registration rejected: %v", err)
		}
	}

	// Phone verification on a fresh session.
	if session, _ := app.Auth.CurrentUser(); session.PhoneNumber == "" {
		info("Verifying phone number...")
		if err := app.Auth.LoginWithPhone(ctx, "+911234567890"); err != nil {
			if !auth.IsAuthError(err) {
				return err
			}
			info("Phone login rejected: %v", err)
		} else if err := app.Auth.VerifyPhoneCode(ctx, auth.AcceptedTestCode); err != nil {
			if !auth.IsAuthError(err) {
				return err
			}
			info("Verification rejected: %v", err)
		}
	}

	// Localization.
	if err := app.I18n.SetLanguage(ctx, i18n.LangHindi); err != nil {
		return err
	}
	success("Language set to %s, welcome reads: %s",
		app.I18n.Current(), app.I18n.Translate("welcome"))

	// Job feed.
	if err := app.Jobs.Refresh(ctx); err != nil {
		return err
	}
	listings := app.Jobs.All()
	success("Job feed loaded: %d listings", len(listings))
	if len(listings) > 0 && len(app.Jobs.Applications()) == 0 {
		application, err := app.Jobs.Apply(ctx, listings[0].ID)
		if err != nil {
			return err
		}
		success("Applied to %q (application %s)", listings[0].Title, application.ID)
	}

	// Chat with the simulated other party.
	contacts := app.Chat.Contacts()
	if len(contacts) > 0 {
		if _, err := app.Chat.SendMessage(ctx, contacts[0].ID, "Hello, is the position still open?"); err != nil {
			return err
		}
		info("Message sent to %s, waiting for reply...", contacts[0].Name)
		waitForReply(app, contacts[0].ID)
		for _, m := range app.Chat.Messages(contacts[0].ID) {
			who := "you"
			if m.Inbound {
				who = contacts[0].Name
			}
			fmt.Printf("    %s: %s\n", who, m.Text)
		}
	}

	success("Unread notifications: %d", app.Notifications.UnreadCount())
	return nil
}

func waitForReply(app *skilllink.App, contactID string) {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, m := range app.Chat.Messages(contactID) {
			if m.Inbound {
				return
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
}
