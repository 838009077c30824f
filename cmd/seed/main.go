// Command seed resets the database to a known demo state: it purges all
// records, creates a vetted demo founder, populates the perk catalog and
// files two sample claims for the demo account.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/foundergrid/perkmarket/internal/server/auth"
	"github.com/foundergrid/perkmarket/internal/server/config"
	"github.com/foundergrid/perkmarket/internal/server/models"
	"github.com/foundergrid/perkmarket/internal/server/repositories/repomanager"
	"golang.org/x/term"
)

const (
	demoName     = "Demo Founder"
	demoContact  = "founder@demo.com"
	demoPassword = "demo123"
)

func catalog() []models.Perk {
	return []models.Perk{
		{
			Provider:              "Amazon Web Services",
			Headline:              "$5,000 in Cloud Credits",
			BenefitValue:          "$5,000 USD",
			RedemptionInstruction: "Apply via console with code: STARTUP-AWS-202X",
			IsLocked:              true,
			ImageURL:              "https://upload.wikimedia.org/wikipedia/commons/9/93/Amazon_Web_Services_Logo.svg",
		},
		{
			Provider:              "Stripe",
			Headline:              "$20,000 Fee-Free Processing",
			BenefitValue:          "$20,000 Processed",
			RedemptionInstruction: "Sign up link: dashboard.stripe.com/register/partner/startup-boost",
			IsLocked:              true,
			ImageURL:              "https://upload.wikimedia.org/wikipedia/commons/b/ba/Stripe_Logo%2C_revised_2016.svg",
		},
		{
			Provider:              "Notion",
			Headline:              "6 Months Free Plus Plan",
			BenefitValue:          "$6,000 Value",
			RedemptionInstruction: "Redeem at notion.so/startups with code: NOTION-BOOST-6M",
			IsLocked:              false,
			ImageURL:              "https://upload.wikimedia.org/wikipedia/commons/4/45/Notion_app_logo.png",
		},
		{
			Provider:              "HubSpot",
			Headline:              "90% Off for First Year",
			BenefitValue:          "Up to $20k Savings",
			RedemptionInstruction: "Contact sales via the partner portal link.",
			IsLocked:              true,
			ImageURL:              "https://upload.wikimedia.org/wikipedia/commons/d/d4/HubSpot_Logo.svg",
		},
		{
			Provider:              "Figma",
			Headline:              "Professional Plan Gratis",
			BenefitValue:          "12 Months Free",
			RedemptionInstruction: "Upgrade workspace settings > billing > enter promo code.",
			IsLocked:              false,
			ImageURL:              "https://upload.wikimedia.org/wikipedia/commons/3/33/Figma-logo.svg",
		},
		{
			Provider:              "Vercel",
			Headline:              "Pro Team Allocation",
			BenefitValue:          "$200/mo Credits",
			RedemptionInstruction: "Auto-applied upon connecting Github Organization.",
			IsLocked:              true,
			ImageURL:              "https://assets.vercel.com/image/upload/v1588805858/repositories/vercel/logo.png",
		},
	}
}

// demoSecret returns the demo account password, prompting on the terminal
// when -prompt is given.
func demoSecret(prompt bool) (string, error) {
	if !prompt {
		return demoPassword, nil
	}
	fmt.Print("Demo account password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return demoPassword, nil
	}
	return string(raw), nil
}

func run(ctx context.Context, prompt bool) error {
	log.Println(">> Seeding sequence initiated...")

	cfg, err := config.LoadTool(ctx)
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	log.Println(">> Database link established.")

	userRepo := rm.Users(db)
	perkRepo := rm.Perks(db)
	claimRepo := rm.Claims(db)

	// Claims reference users and perks, so they go first.
	if err := claimRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := userRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := perkRepo.DeleteAll(ctx); err != nil {
		return err
	}
	log.Println(">> Previous data purged.")

	secret, err := demoSecret(prompt)
	if err != nil {
		return err
	}
	digest, err := auth.HashSecret(secret)
	if err != nil {
		return err
	}

	founder, err := userRepo.Create(ctx, &models.User{
		AliasName:      demoName,
		DigitalContact: demoContact,
		AccessKey:      digest,
		IsVetted:       true,
		Role:           models.RoleFounder,
	})
	if err != nil {
		return err
	}
	log.Printf(">> Demo identity created: %s", demoContact)

	sampleClaims := map[string]bool{"Amazon Web Services": true, "Figma": true}
	created := 0
	claimed := 0
	for _, perk := range catalog() {
		p := perk
		stored, err := perkRepo.Create(ctx, &p)
		if err != nil {
			return err
		}
		created++

		if sampleClaims[stored.Provider] {
			if _, err := claimRepo.Create(ctx, &models.Claim{
				UserID: founder.ID,
				PerkID: stored.ID,
			}); err != nil {
				return err
			}
			claimed++
		}
	}
	log.Printf(">> Catalog populated: %d assets.", created)
	log.Printf(">> Sample claims filed: %d.", claimed)

	log.Println(">> Seeding complete. System ready.")
	return nil
}

func main() {
	prompt := flag.Bool("prompt", false, "prompt for the demo account password instead of using the default")
	flag.Parse()

	if err := run(context.Background(), *prompt); err != nil {
		log.Printf(">> Seeding failed: %v", err)
		os.Exit(1)
	}
}
