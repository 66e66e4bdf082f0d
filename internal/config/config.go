package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Learning          Learning          `mapstructure:",squash"`
	StatsSnapshotSync StatsSnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Learning reúne os limiares do motor de aprendizado. Os valores padrão são
// política fixa do produto; ficam nomeados aqui para que os testes consigam
// exercitar o comportamento de borda sem números mágicos espalhados.
type Learning struct {
	MinFeedbackForAnalysis int `mapstructure:"learning_min_feedback"`
	MinCompletedForecasts  int `mapstructure:"learning_min_completed_forecasts"`
	TrendWindowDays        int `mapstructure:"learning_trend_window_days"`
	UrgencyThresholdDays   int `mapstructure:"forecast_urgency_threshold_days"`
}

type StatsSnapshotSync struct {
	CronSchedule string `mapstructure:"stats_snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"stats_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/forecast_insights")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Limiares do motor de aprendizado
	viper.SetDefault("LEARNING_MIN_FEEDBACK", 10)            // Mínimo de feedbacks para análise de padrões
	viper.SetDefault("LEARNING_MIN_COMPLETED_FORECASTS", 10) // Mínimo de previsões resolvidas para prontidão
	viper.SetDefault("LEARNING_TREND_WINDOW_DAYS", 7)        // Janela da comparação período a período
	viper.SetDefault("FORECAST_URGENCY_THRESHOLD_DAYS", 7)   // Banda de urgência das previsões pendentes

	// Defaults para a fotografia diária de estatísticas
	viper.SetDefault("STATS_SNAPSHOT_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("STATS_SNAPSHOT_SYNC_ENABLED", false)    // Habilitar fotografia diária

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
