package content

// Interest is a profile interest label. The set of known labels is closed;
// anything else falls back to IconDefault so an unmapped interest is visible
// in one place instead of failing somewhere in a template.
type Interest string

const (
	InterestDistributedSystems Interest = "distributed-systems"
	InterestDatabases          Interest = "databases"
	InterestOpenSource         Interest = "open-source"
	InterestCloudInfra         Interest = "cloud-infrastructure"
	InterestWriting            Interest = "technical-writing"
	InterestPhotography        Interest = "photography"
)

const (
	IconNetwork  = "network"
	IconDatabase = "database"
	IconGitFork  = "git-fork"
	IconCloud    = "cloud"
	IconPen      = "pen"
	IconCamera   = "camera"
	IconDefault  = "sparkle"
)

// Icon returns the icon name for the interest.
func (i Interest) Icon() string {
	switch i {
	case InterestDistributedSystems:
		return IconNetwork
	case InterestDatabases:
		return IconDatabase
	case InterestOpenSource:
		return IconGitFork
	case InterestCloudInfra:
		return IconCloud
	case InterestWriting:
		return IconPen
	case InterestPhotography:
		return IconCamera
	default:
		return IconDefault
	}
}

// Label returns the human-readable form of the interest.
func (i Interest) Label() string {
	switch i {
	case InterestDistributedSystems:
		return "Distributed Systems"
	case InterestDatabases:
		return "Databases"
	case InterestOpenSource:
		return "Open Source"
	case InterestCloudInfra:
		return "Cloud Infrastructure"
	case InterestWriting:
		return "Technical Writing"
	case InterestPhotography:
		return "Photography"
	default:
		return string(i)
	}
}
