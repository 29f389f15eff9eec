package cmd

import (
	"fmt"
	u "net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tanq16/sdlfetch/internal/fetcher"
	"github.com/tanq16/sdlfetch/internal/jobs"
	"github.com/tanq16/sdlfetch/internal/output"
	"github.com/tanq16/sdlfetch/internal/utils"
)

var (
	baseDir       string
	jobsFile      string
	timeout       time.Duration
	kaTimeout     time.Duration
	userAgent     string
	proxyURL      string
	proxyUsername string
	proxyPassword string
	s3Profile     string
	headers       []string
	debug         bool
)

var SDLFetchVersion = "dev"

var globalHTTPConfig utils.HTTPClientConfig

var rootCmd = &cobra.Command{
	Use:     "sdlfetch",
	Short:   "Download and extract the SDL2 development libraries into ./external",
	Version: SDLFetchVersion,
	Args:    cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debug)
		globalHTTPConfig = buildHTTPConfig()
	},
	Run: func(cmd *cobra.Command, args []string) {
		jobList := loadJobs()
		f := fetcher.New(fetcher.Config{
			HTTPClientConfig: globalHTTPConfig,
			S3Profile:        s3Profile,
		})
		if err := f.Run(cmd.Context(), jobList, resolveBaseDir()); err != nil {
			output.PrintError(err.Error())
			os.Exit(1)
		}
	},
}

func Execute() {
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCleanCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&baseDir, "dir", "d", "", "Directory to extract into (default: external/ next to the executable)")
	rootCmd.PersistentFlags().StringVarP(&jobsFile, "jobs", "j", "", "YAML file listing archives to fetch instead of the SDL2 set")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", 10*time.Minute, "Overall timeout per download, 0 disables it (eg. 30s, 5m)")
	rootCmd.Flags().DurationVarP(&kaTimeout, "keep-alive-timeout", "k", 90*time.Second, "Keep-alive timeout for client (eg. 10s, 1m, 80s)")
	rootCmd.Flags().StringVarP(&userAgent, "user-agent", "a", utils.ToolUserAgent, "User agent")
	rootCmd.Flags().StringVarP(&proxyURL, "proxy", "p", "", "HTTP/HTTPS proxy URL (e.g., proxy.example.com:8080)")
	rootCmd.Flags().StringVar(&proxyUsername, "proxy-username", "", "Proxy username (if not provided in proxy URL)")
	rootCmd.Flags().StringVar(&proxyPassword, "proxy-password", "", "Proxy password (if not provided in proxy URL)")
	rootCmd.Flags().StringArrayVarP(&headers, "header", "H", []string{}, "Custom headers (like 'Authorization: Basic dXNlcjpwYXNz'); can be specified multiple times")
	rootCmd.Flags().StringVar(&s3Profile, "s3-profile", "", "AWS shared config profile for s3:// links")
}

func buildHTTPConfig() utils.HTTPClientConfig {
	proxy, username, password := splitProxyAuth(proxyURL, proxyUsername, proxyPassword)
	return utils.HTTPClientConfig{
		Timeout:       timeout,
		KATimeout:     kaTimeout,
		ProxyURL:      proxy,
		ProxyUsername: username,
		ProxyPassword: password,
		UserAgent:     userAgent,
		Headers:       utils.ParseHeaderArgs(headers),
	}
}

// splitProxyAuth moves credentials embedded in the proxy URL into the
// username/password pair unless a username was given explicitly.
func splitProxyAuth(proxy, username, password string) (string, string, string) {
	parsedProxy, err := u.Parse(proxy)
	if err == nil && parsedProxy.User != nil && username == "" {
		username = parsedProxy.User.Username()
		if pass, set := parsedProxy.User.Password(); set {
			password = pass
		}
		parsedProxy.User = nil
		proxy = parsedProxy.String()
	}
	return proxy, username, password
}

func resolveBaseDir() string {
	if baseDir != "" {
		return baseDir
	}
	return utils.DefaultBaseDir()
}

func loadJobs() []utils.Job {
	jobList, err := jobs.Select(jobsFile)
	if err != nil {
		output.PrintError(fmt.Sprintf("Failed to load jobs: %v", err))
		os.Exit(1)
	}
	return jobList
}
