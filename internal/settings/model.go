package settings

// SyncPolicy represents .vaultdvc/settings.yaml.
type SyncPolicy struct {
	// AutoStage makes the tool stage marker files in git after add.
	AutoStage bool `yaml:"autostage"`
	// AutoPull pulls tracked attachments embedded in a note when it is opened.
	AutoPull bool `yaml:"autopull"`
	// AutoPullExtensions restricts auto pull to embeds containing one of these.
	AutoPullExtensions []string `yaml:"autopullExtension"`
}

// Keys lists the settable keys in display order.
var Keys = []string{"autostage", "autopull", "autopullExtension"}

// Defaults returns the policy used for absent fields.
func Defaults() *SyncPolicy {
	return &SyncPolicy{
		AutoStage:          false,
		AutoPull:           false,
		AutoPullExtensions: []string{},
	}
}
