package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/alexkarev/rowaudit/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("Config", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
		os.Unsetenv("SOURCE_MODE")
		os.Unsetenv("POPULATION_PATH")
	})

	writeConfig := func(content string) {
		configPath := filepath.Join(tempDir, "config.yaml")
		err := os.WriteFile(configPath, []byte(content), 0644)
		Expect(err).NotTo(HaveOccurred())

		err = os.Chdir(tempDir)
		Expect(err).NotTo(HaveOccurred())
	}

	Describe("Load", func() {
		Context("with valid config file", func() {
			BeforeEach(func() {
				writeConfig(`
environment: "dev"

population:
  path: "SampleData/referential_data.csv"
  label_column: "BankId"

source:
  mode: "simulate"
  draws: 200
  seed: 7

analysis:
  max_cv: 1.0
  min_coverage: 0.5
  top: 5

logging:
  level: "info"
`)
			})

			It("should load configuration successfully", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg).NotTo(BeNil())
			})

			It("should parse the population section", func() {
				cfg, _ := config.Load()
				Expect(cfg.Population.Path).To(Equal("SampleData/referential_data.csv"))
				Expect(cfg.Population.LabelColumn).To(Equal("BankId"))
			})

			It("should parse the source section", func() {
				cfg, _ := config.Load()
				Expect(cfg.Source.Mode).To(Equal(config.SourceSimulate))
				Expect(cfg.Source.Draws).To(Equal(200))
				Expect(cfg.Source.Seed).To(Equal(uint64(7)))
			})

			It("should parse analysis thresholds", func() {
				cfg, _ := config.Load()
				Expect(cfg.Analysis.MaxCV).To(Equal(1.0))
				Expect(cfg.Analysis.MinCoverage).To(Equal(0.5))
			})
		})

		Context("with a minimal config file", func() {
			BeforeEach(func() {
				writeConfig(`
population:
  path: "data.csv"
`)
			})

			It("should fill the remaining keys with defaults", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Environment).To(Equal(config.EnvDev))
				Expect(cfg.Population.LabelColumn).To(Equal("BankId"))
				Expect(cfg.Source.Mode).To(Equal(config.SourceSimulate))
				Expect(cfg.Source.Draws).To(Equal(200))
				Expect(cfg.Analysis.Top).To(Equal(5))
				Expect(cfg.Logging.Level).To(Equal(config.LogLevelInfo))
			})
		})

		Context("with an invalid source mode", func() {
			BeforeEach(func() {
				writeConfig(`
population:
  path: "data.csv"

source:
  mode: "telepathy"
`)
			})

			It("should fail validation", func() {
				_, err := config.Load()
				Expect(err).To(HaveOccurred())
			})
		})

		Context("without a population path", func() {
			BeforeEach(func() {
				writeConfig(`
source:
  mode: "simulate"
`)
			})

			It("should fail validation", func() {
				_, err := config.Load()
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Validate", func() {
		var cfg *config.Config

		BeforeEach(func() {
			cfg = &config.Config{
				Environment: config.EnvDev,
				Population:  config.PopulationConfig{Path: "data.csv", LabelColumn: "BankId"},
				Source:      config.SourceConfig{Mode: config.SourceSimulate, Draws: 100, Timeout: "20s"},
				Analysis:    config.AnalysisConfig{MaxCV: 1.0, MinCoverage: 0.5, Top: 5},
				Logging:     config.LoggingConfig{Level: config.LogLevelInfo},
			}
		})

		It("should accept a complete configuration", func() {
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should reject an unknown environment", func() {
			cfg.Environment = "production"
			Expect(cfg.Validate()).NotTo(Succeed())
		})

		It("should reject an unknown log level", func() {
			cfg.Logging.Level = "trace"
			Expect(cfg.Validate()).NotTo(Succeed())
		})

		It("should reject simulate mode without draws", func() {
			cfg.Source.Draws = 0
			Expect(cfg.Validate()).NotTo(Succeed())
		})

		It("should reject logfile mode without a log path", func() {
			cfg.Source.Mode = config.SourceLogfile
			cfg.Source.LogPath = ""
			Expect(cfg.Validate()).NotTo(Succeed())
		})

		It("should accept logfile mode with a log path", func() {
			cfg.Source.Mode = config.SourceLogfile
			cfg.Source.LogPath = "run.log"
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should reject command mode without a command", func() {
			cfg.Source.Mode = config.SourceCommand
			cfg.Source.Command = ""
			Expect(cfg.Validate()).NotTo(Succeed())
		})

		It("should reject command mode with a malformed timeout", func() {
			cfg.Source.Mode = config.SourceCommand
			cfg.Source.Command = "dotnet"
			cfg.Source.Timeout = "soon"
			Expect(cfg.Validate()).NotTo(Succeed())
		})

		It("should reject a non-positive max_cv", func() {
			cfg.Analysis.MaxCV = 0
			Expect(cfg.Validate()).NotTo(Succeed())
		})

		It("should reject a coverage minimum above 1", func() {
			cfg.Analysis.MinCoverage = 1.5
			Expect(cfg.Validate()).NotTo(Succeed())
		})

		It("should reject a negative top", func() {
			cfg.Analysis.Top = -1
			Expect(cfg.Validate()).NotTo(Succeed())
		})
	})
})
