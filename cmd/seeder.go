package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/leagueops/league-management/internal/permission"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with an administrator account for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			for _, table := range []string{"logs", "user_permissions", "statistics", "matches", "players", "teams", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		adminExternalID := "seed-admin"
		adminName := "Admin"

		var exists int
		row := db.Raw("SELECT 1 FROM users WHERE external_id = ?", adminExternalID).Row()
		adminExists := false
		if err := row.Scan(&exists); err == nil {
			fmt.Println("admin user already exists; will ensure permissions")
			adminExists = true
		}

		if !adminExists {
			if err := db.Exec(
				"INSERT INTO users (external_id, name, created_at, updated_at) VALUES (?, ?, now(), now())",
				adminExternalID, adminName,
			).Error; err != nil {
				log.Fatalf("failed to insert admin user: %v", err)
			}
			fmt.Println("Seeded admin user:", adminExternalID)
		}

		var adminUserID int64
		if err := db.Raw("SELECT id FROM users WHERE external_id = ?", adminExternalID).Row().Scan(&adminUserID); err != nil {
			log.Fatalf("failed to lookup admin user id: %v", err)
		}

		// grant the full enum so the seeded admin can reach every procedure
		for _, name := range permission.All() {
			var granted int
			if err := db.Raw(
				"SELECT 1 FROM user_permissions WHERE user_id = ? AND name = ?", adminUserID, name,
			).Row().Scan(&granted); err == nil {
				continue
			}
			if err := db.Exec(
				"INSERT INTO user_permissions (user_id, name, created_at) VALUES (?, ?, now())",
				adminUserID, name,
			).Error; err != nil {
				log.Fatalf("failed to grant permission %s to admin user: %v", name, err)
			}
		}
		fmt.Println("Granted all permissions to admin user")
	},
}
