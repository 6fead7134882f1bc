package main

import (
    "fmt"
    "log"

    "github.com/mearajennifer/helper/internal/alert"
    "github.com/mearajennifer/helper/internal/auth"
    "github.com/mearajennifer/helper/internal/config"
    "github.com/mearajennifer/helper/internal/db"
    "github.com/mearajennifer/helper/internal/http"
    "github.com/mearajennifer/helper/internal/models"
    "github.com/mearajennifer/helper/internal/notify"
    "github.com/mearajennifer/helper/internal/seed"
    "github.com/mearajennifer/helper/internal/session"
    "github.com/mearajennifer/helper/internal/store"
)

func main() {
    cfg := config.Load()

    gdb := db.Connect(cfg.DSN)
    db.AutoMigrate(gdb,
        &models.Category{},
        &models.Organization{},
        &models.Volunteer{},
        &models.Membership{},
    )
    if err := seed.Categories(gdb); err != nil {
        log.Fatalf("❌ Seeding failed: %v", err)
    }

    volunteers := store.NewGormVolunteerRepository(gdb)
    orgs := store.NewGormOrganizationRepository(gdb)
    categories := store.NewGormCategoryRepository(gdb)
    memberships := store.NewGormMembershipRepository(gdb)

    sender := notify.NewTwilioSender(cfg.AccountSID, cfg.AuthToken, cfg.SMSFrom)

    r := httpserver.NewRouter(httpserver.Deps{
        Volunteers:    volunteers,
        Organizations: orgs,
        Categories:    categories,
        Memberships:   memberships,
        Sessions:      session.NewManager(cfg.SessionSecret),
        Auth:          auth.NewService(volunteers, orgs, categories),
        Alerts:        alert.NewService(orgs, volunteers, sender),
    })
    log.Printf("🚀 Server listening on :%s\n", cfg.AppPort)
    r.Run(fmt.Sprintf(":%s", cfg.AppPort))
}
