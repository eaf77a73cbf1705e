package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hireflow/internal/models"
)

// defaultJobWeight matches the schema default for the two score weights.
const defaultJobWeight = 5

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage job postings",
}

var jobCreateFile string

// jobCreateCmd seeds a job posting from a JSON definition file. The
// pipeline itself never writes jobs; this is the operator's way in.
var jobCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a job posting from a JSON definition file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		data, err := os.ReadFile(jobCreateFile)
		if err != nil {
			return fmt.Errorf("reading job definition: %w", err)
		}

		job, err := parseJobDefinition(data)
		if err != nil {
			return err
		}

		if err := appInstance.JobStore.CreateJob(cmd.Context(), job); err != nil {
			return fmt.Errorf("error creating job: %w", err)
		}

		fmt.Printf("Created job %s (%s)\n", job.ID, job.Title)
		return nil
	},
}

// jobDefinition is the JSON shape of a job definition file.
type jobDefinition struct {
	Title               string                       `json:"title"`
	Description         string                       `json:"description"`
	ResumeWeight        *int                         `json:"resume_weight"`
	AnswersWeight       *int                         `json:"answers_weight"`
	ScoringInstructions *string                      `json:"scoring_instructions"`
	SchedulingLink      *string                      `json:"scheduling_link"`
	NotificationEmail   *string                      `json:"notification_email"`
	Questions           []models.ApplicationQuestion `json:"questions"`
}

// parseJobDefinition decodes a job definition, filling in the default
// weights when the file leaves them out.
func parseJobDefinition(data []byte) (*models.Job, error) {
	var def jobDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decoding job definition: %w", err)
	}
	if strings.TrimSpace(def.Title) == "" {
		return nil, fmt.Errorf("job definition is missing a title")
	}

	job := &models.Job{
		Title:               def.Title,
		Description:         def.Description,
		ResumeWeight:        defaultJobWeight,
		AnswersWeight:       defaultJobWeight,
		ScoringInstructions: def.ScoringInstructions,
		SchedulingLink:      def.SchedulingLink,
		NotificationEmail:   def.NotificationEmail,
		Questions:           def.Questions,
	}
	if def.ResumeWeight != nil {
		job.ResumeWeight = *def.ResumeWeight
	}
	if def.AnswersWeight != nil {
		job.AnswersWeight = *def.AnswersWeight
	}
	if job.ResumeWeight < 0 || job.AnswersWeight < 0 {
		return nil, fmt.Errorf("job weights must not be negative")
	}
	return job, nil
}

func init() {
	jobCreateCmd.Flags().StringVarP(&jobCreateFile, "file", "f", "", "path to the job definition JSON file")
	_ = jobCreateCmd.MarkFlagRequired("file")
	jobCmd.AddCommand(jobCreateCmd)
	rootCmd.AddCommand(jobCmd)
}
