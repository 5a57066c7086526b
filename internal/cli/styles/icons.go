package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "\uf0ac" //  browser/web
	IconVersion   = "\uf02b" //  tag
	IconGitBranch = "\ue725" //  git branch
	IconCalendar  = "\uf073" //  calendar
	IconGithub    = "\uf09b" //  github
	IconGo        = "\ue627" //  go gopher
	IconArrow     = "\uf061" //  arrow right
	IconScale     = "\uf24e" //  license

	IconCheck   = "\uf00c" //  check
	IconX       = "\uf00d" //  x
	IconWarning = "\uf071" //  warning
	IconInfo    = "\uf05a" //  info
	IconWrench  = "\uf0ad" //  wrench
	IconPackage = "\uf187" //  archive/package
	IconVideo   = "\uf03d" //  video camera
	IconConfig  = "\ue615" //  config
	IconFilter  = "\uf0b0" //  filter
)
