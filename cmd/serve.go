package cmd

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"hireflow/internal/apihandlers"
)

var (
	serveAddr string
	servePort string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP trigger API",
	Long: `Starts an HTTP server exposing the internal trigger endpoints:
application submission, synchronous candidate processing and status
notification emails. Trigger routes require the X-Trigger-Secret header.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		router := gin.Default()
		apiHandler := apihandlers.NewAPIHandler(appInstance)

		internal := router.Group("/internal")
		internal.Use(apihandlers.TriggerAuth(appInstance.Config.Server.TriggerSecret))
		{
			internal.POST("/applications", apiHandler.SubmitApplicationHandler)
			internal.POST("/candidates/:id/process", apiHandler.ProcessCandidateHandler)
			internal.POST("/candidates/:id/notify", apiHandler.NotifyCandidateHandler)
		}

		router.GET("/health", apiHandler.HealthHandler)

		if serveAddr == "" {
			serveAddr = appInstance.Config.Server.Addr
		}
		if servePort == "" {
			servePort = fmt.Sprintf("%d", appInstance.Config.Server.Port)
		}
		listenAddr := fmt.Sprintf("%s:%s", serveAddr, servePort)
		log.Printf("Starting trigger API server on http://%s", listenAddr)

		if err := router.Run(listenAddr); err != nil {
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (defaults to server.addr)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (defaults to server.port)")
}
