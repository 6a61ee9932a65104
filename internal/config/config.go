package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Ads            Ads            `mapstructure:",squash"`
	DSP            DSP            `mapstructure:",squash"`
	Catalog        Catalog        `mapstructure:",squash"`
	Associates     Associates     `mapstructure:",squash"`
	BrandAnalytics BrandAnalytics `mapstructure:",squash"`
	Cache          Cache          `mapstructure:",squash"`
	Optimization   Optimization   `mapstructure:",squash"`
	CacheSweep     CacheSweep     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Ads é a configuração da API de sponsored ads
type Ads struct {
	Enabled        bool   `mapstructure:"ads_enabled"`
	URL            string `mapstructure:"ads_url"`
	AccessToken    string `mapstructure:"ads_access_token"`
	ProfileID      string `mapstructure:"ads_profile_id"`
	TimeoutSeconds int    `mapstructure:"ads_timeout_seconds"`
}

// DSP é a configuração da API programática (demand-side platform)
type DSP struct {
	Enabled        bool   `mapstructure:"dsp_enabled"`
	URL            string `mapstructure:"dsp_url"`
	AccessToken    string `mapstructure:"dsp_access_token"`
	AccountID      string `mapstructure:"dsp_account_id"`
	TimeoutSeconds int    `mapstructure:"dsp_timeout_seconds"`
}

// Catalog é a configuração da API de catálogo/pedidos (SP-API)
type Catalog struct {
	Enabled        bool   `mapstructure:"catalog_enabled"`
	URL            string `mapstructure:"catalog_url"`
	AccessToken    string `mapstructure:"catalog_access_token"`
	MarketplaceID  string `mapstructure:"catalog_marketplace_id"`
	TimeoutSeconds int    `mapstructure:"catalog_timeout_seconds"`
}

// Associates é a configuração da API de associados/atribuição
type Associates struct {
	Enabled        bool   `mapstructure:"associates_enabled"`
	URL            string `mapstructure:"associates_url"`
	AccessToken    string `mapstructure:"associates_access_token"`
	PartnerTag     string `mapstructure:"associates_partner_tag"`
	TimeoutSeconds int    `mapstructure:"associates_timeout_seconds"`
}

// BrandAnalytics é a configuração da API de brand analytics
type BrandAnalytics struct {
	Enabled        bool   `mapstructure:"brand_analytics_enabled"`
	URL            string `mapstructure:"brand_analytics_url"`
	AccessToken    string `mapstructure:"brand_analytics_access_token"`
	TimeoutSeconds int    `mapstructure:"brand_analytics_timeout_seconds"`
}

// Cache controla o cache em memória compartilhado entre os serviços
type Cache struct {
	Capacity                      int `mapstructure:"cache_capacity"`
	CampaignTTLSeconds            int `mapstructure:"cache_campaign_ttl_seconds"`
	CampaignListTTLSeconds        int `mapstructure:"cache_campaign_list_ttl_seconds"`
	ProductInsightsTTLSeconds     int `mapstructure:"cache_product_insights_ttl_seconds"`
	MarketplaceInsightsTTLSeconds int `mapstructure:"cache_marketplace_insights_ttl_seconds"`
}

// Optimization define os limiares usados para gerar sugestões de otimização.
// Os valores vêm do ambiente para serem ajustáveis sem mudança de código.
type Optimization struct {
	TargetACOS          float64 `mapstructure:"optimization_target_acos"`
	TargetROAS          float64 `mapstructure:"optimization_target_roas"`
	MinSpendBudgetRatio float64 `mapstructure:"optimization_min_spend_budget_ratio"`
	LookbackDays        int     `mapstructure:"optimization_lookback_days"`
}

// CacheSweep controla a varredura periódica de entradas expiradas do cache
type CacheSweep struct {
	CronSchedule string `mapstructure:"cache_sweep_cron"`
	Enabled      bool   `mapstructure:"cache_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("ADS_ENABLED", true)
	viper.SetDefault("ADS_URL", "https://advertising-api.amazon.com")
	viper.SetDefault("ADS_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("ADS_PROFILE_ID", "")
	viper.SetDefault("ADS_TIMEOUT_SECONDS", 10)

	viper.SetDefault("DSP_ENABLED", true)
	viper.SetDefault("DSP_URL", "https://advertising-api.amazon.com/dsp")
	viper.SetDefault("DSP_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("DSP_ACCOUNT_ID", "")
	viper.SetDefault("DSP_TIMEOUT_SECONDS", 10)

	viper.SetDefault("CATALOG_ENABLED", false)
	viper.SetDefault("CATALOG_URL", "https://sellingpartnerapi-na.amazon.com")
	viper.SetDefault("CATALOG_ACCESS_TOKEN", "your_access_token")
	viper.SetDefault("CATALOG_MARKETPLACE_ID", "ATVPDKIKX0DER")
	viper.SetDefault("CATALOG_TIMEOUT_SECONDS", 10)

	viper.SetDefault("ASSOCIATES_ENABLED", false)
	viper.SetDefault("ASSOCIATES_URL", "https://webservices.amazon.com/paapi5")
	viper.SetDefault("ASSOCIATES_ACCESS_TOKEN", "your_access_token")
	viper.SetDefault("ASSOCIATES_PARTNER_TAG", "")
	viper.SetDefault("ASSOCIATES_TIMEOUT_SECONDS", 10)

	viper.SetDefault("BRAND_ANALYTICS_ENABLED", false)
	viper.SetDefault("BRAND_ANALYTICS_URL", "https://sellingpartnerapi-na.amazon.com/brandAnalytics")
	viper.SetDefault("BRAND_ANALYTICS_ACCESS_TOKEN", "your_access_token")
	viper.SetDefault("BRAND_ANALYTICS_TIMEOUT_SECONDS", 10)

	viper.SetDefault("CACHE_CAPACITY", 1000)
	viper.SetDefault("CACHE_CAMPAIGN_TTL_SECONDS", 300)              // 5 minutos por campanha
	viper.SetDefault("CACHE_CAMPAIGN_LIST_TTL_SECONDS", 120)         // 2 minutos por listagem
	viper.SetDefault("CACHE_PRODUCT_INSIGHTS_TTL_SECONDS", 600)      // 10 minutos
	viper.SetDefault("CACHE_MARKETPLACE_INSIGHTS_TTL_SECONDS", 1800) // 30 minutos

	viper.SetDefault("OPTIMIZATION_TARGET_ACOS", 30.0)
	viper.SetDefault("OPTIMIZATION_TARGET_ROAS", 3.0)
	viper.SetDefault("OPTIMIZATION_MIN_SPEND_BUDGET_RATIO", 0.5)
	viper.SetDefault("OPTIMIZATION_LOOKBACK_DAYS", 30)

	viper.SetDefault("CACHE_SWEEP_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("CACHE_SWEEP_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

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

	return config, nil
}

// EnabledProviders retorna o nome de cada provider habilitado na configuração
func (c *Config) EnabledProviders() []string {
	providers := make([]string, 0, 5)

	if c.Ads.Enabled {
		providers = append(providers, "ads")
	}
	if c.DSP.Enabled {
		providers = append(providers, "dsp")
	}
	if c.Catalog.Enabled {
		providers = append(providers, "catalog")
	}
	if c.Associates.Enabled {
		providers = append(providers, "associates")
	}
	if c.BrandAnalytics.Enabled {
		providers = append(providers, "brand_analytics")
	}

	return providers
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
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
