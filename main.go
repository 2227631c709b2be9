package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aksisonline/AV-Champs-tools-kt/config"
	"github.com/aksisonline/AV-Champs-tools-kt/controller"
	"github.com/aksisonline/AV-Champs-tools-kt/dao"
	"github.com/aksisonline/AV-Champs-tools-kt/logic"
	"github.com/aksisonline/AV-Champs-tools-kt/models"
)

func main() {
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize config
	if len(os.Args) < 2 {
		logrus.Fatal("Usage: go run main.go <config.yaml>")
	}
	configFile := os.Args[1]
	if err := config.LoadConfig(configFile); err != nil {
		logrus.Fatalf("Failed to load config from %s: %v", configFile, err)
	}

	// Initialize the local store backend
	var store dao.Store
	switch config.GlobalConfig.Store.Backend {
	case "postgres":
		db, err := gorm.Open(postgres.Open(config.GlobalConfig.DSN()), &gorm.Config{})
		if err != nil {
			logrus.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.KVRecord{}); err != nil {
			logrus.Fatalf("Failed to migrate database: %v", err)
		}
		store = dao.NewGormStore(db)
	default:
		fileStore, err := dao.OpenFileStore(config.GlobalConfig.Store.Path)
		if err != nil {
			logrus.Fatalf("Failed to open store file: %v", err)
		}
		defer fileStore.Close()
		store = fileStore
	}

	// Initialize logics
	notifier := logic.NewLogNotifier()
	ledger := logic.NewPointsLedger(store, notifier)
	catalog := logic.NewToolCatalog()
	policy := logic.NewUnlockPolicy(ledger, catalog)

	// Initialize controllers
	pointsCtrl := controller.NewPointsController(ledger)
	toolCtrl := controller.NewToolController(catalog, policy, ledger, store)

	// Setup Gin router
	r := gin.Default()
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/tools", toolCtrl.ListTools)
	r.GET("/tools/unlocked", toolCtrl.GetUnlocked)
	r.GET("/tools/:id", toolCtrl.GetTool)
	r.POST("/tools/:id/unlock", toolCtrl.UnlockTool)
	r.POST("/tools/:id/evaluate", toolCtrl.EvaluateTool)
	r.POST("/api/tools/purchase", toolCtrl.PurchaseTool)
	r.GET("/points/balance", pointsCtrl.GetBalance)
	r.GET("/points/transactions", pointsCtrl.GetTransactions)
	r.POST("/points/transactions", pointsCtrl.ApplyTransaction)

	// Run server
	if err := r.Run(fmt.Sprintf(":%d", config.GlobalConfig.Server.Port)); err != nil {
		logrus.Fatalf("Failed to run server: %v", err)
	}
}
