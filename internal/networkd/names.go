package networkd

import (
	"fmt"

	"github.com/valyala/fasttemplate"

	"github.com/mmaisel/networkd-apply/internal/config"
)

// FileNamer expands the configured unit file name patterns. Patterns use
// fasttemplate syntax with a single {{name}} variable.
type FileNamer struct {
	linkFile      *fasttemplate.Template
	networkFile   *fasttemplate.Template
	vlanNetdev    *fasttemplate.Template
	vlanNetwork   *fasttemplate.Template
	bridgeNetdev  *fasttemplate.Template
	bridgeNetwork *fasttemplate.Template
}

func NewFileNamer(naming *config.NamingConfig) (*FileNamer, error) {
	n := &FileNamer{}

	for _, t := range []struct {
		pattern string
		target  **fasttemplate.Template
	}{
		{naming.LinkFile, &n.linkFile},
		{naming.NetworkFile, &n.networkFile},
		{naming.VLANNetdev, &n.vlanNetdev},
		{naming.VLANNetwork, &n.vlanNetwork},
		{naming.BridgeNetdev, &n.bridgeNetdev},
		{naming.BridgeNetwork, &n.bridgeNetwork},
	} {
		tmpl, err := fasttemplate.NewTemplate(t.pattern, "{{", "}}")
		if err != nil {
			return nil, fmt.Errorf("invalid file name pattern %q: %v", t.pattern, err)
		}
		*t.target = tmpl
	}

	return n, nil
}

func expand(t *fasttemplate.Template, name string) string {
	return t.ExecuteString(map[string]interface{}{"name": name})
}

func (n *FileNamer) LinkFile(name string) string      { return expand(n.linkFile, name) }
func (n *FileNamer) NetworkFile(name string) string   { return expand(n.networkFile, name) }
func (n *FileNamer) VLANNetdev(name string) string    { return expand(n.vlanNetdev, name) }
func (n *FileNamer) VLANNetwork(name string) string   { return expand(n.vlanNetwork, name) }
func (n *FileNamer) BridgeNetdev(name string) string  { return expand(n.bridgeNetdev, name) }
func (n *FileNamer) BridgeNetwork(name string) string { return expand(n.bridgeNetwork, name) }
