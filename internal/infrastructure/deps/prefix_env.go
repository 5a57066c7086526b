package deps

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// multiarchTriplets maps GOARCH to the Debian multiarch directory name used
// under <prefix>/lib.
var multiarchTriplets = map[string]string{
	"amd64":    "x86_64-linux-gnu",
	"arm64":    "aarch64-linux-gnu",
	"386":      "i386-linux-gnu",
	"arm":      "arm-linux-gnueabihf",
	"riscv64":  "riscv64-linux-gnu",
	"ppc64le":  "powerpc64le-linux-gnu",
	"s390x":    "s390x-linux-gnu",
	"loong64":  "loongarch64-linux-gnu",
	"mips64le": "mips64el-linux-gnuabi64",
}

// CommandEnvWithPrefix returns an environment suitable for exec.Cmd.Env.
// It prepends paths derived from a GStreamer install prefix (e.g.
// /opt/gstreamer) to the current environment so the probing tool sees that
// install's plugins and pkg-config files first.
func CommandEnvWithPrefix(prefix string) []string {
	if strings.TrimSpace(prefix) == "" {
		return os.Environ()
	}
	return mergePrefixEnv(os.Environ(), prefix)
}

func mergePrefixEnv(base []string, prefix string) []string {
	updates := prefixEnv(prefix, runtime.GOARCH)

	m := make(map[string]string, len(base))
	for _, kv := range base {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			m[k] = v
		}
	}

	for k, values := range updates {
		m[k] = prependPathList(m[k], values...)
	}

	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	return out
}

// prefixEnv lists the directories to prepend for prefix. goarch selects the
// multiarch directory and is the architecture of the machine running the tool.
func prefixEnv(prefix, goarch string) map[string][]string {
	prefix = filepath.Clean(prefix)

	pkgConfig := []string{
		filepath.Join(prefix, "lib", "pkgconfig"),
		filepath.Join(prefix, "lib64", "pkgconfig"),
		filepath.Join(prefix, "share", "pkgconfig"),
	}

	ldLibrary := []string{
		filepath.Join(prefix, "lib"),
		filepath.Join(prefix, "lib64"),
	}

	gstPlugins := []string{
		filepath.Join(prefix, "lib", "gstreamer-1.0"),
		filepath.Join(prefix, "lib64", "gstreamer-1.0"),
	}

	if triplet, ok := multiarchTriplets[goarch]; ok {
		multiarch := filepath.Join(prefix, "lib", triplet)
		pkgConfig = append(pkgConfig, filepath.Join(multiarch, "pkgconfig"))
		ldLibrary = append(ldLibrary, multiarch)
		gstPlugins = append(gstPlugins, filepath.Join(multiarch, "gstreamer-1.0"))
	}

	return map[string][]string{
		"PKG_CONFIG_PATH":            pkgConfig,
		"LD_LIBRARY_PATH":            ldLibrary,
		"GST_PLUGIN_PATH_1_0":        gstPlugins,
		"GST_PLUGIN_SYSTEM_PATH_1_0": gstPlugins,
	}
}

func prependPathList(existing string, values ...string) string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(values)+4)

	add := func(p string) {
		p = strings.TrimSpace(p)
		if p == "" {
			return
		}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for _, v := range values {
		add(v)
	}

	if existing != "" {
		for _, v := range strings.Split(existing, string(os.PathListSeparator)) {
			add(v)
		}
	}

	return strings.Join(out, string(os.PathListSeparator))
}
