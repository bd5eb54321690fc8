package networks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const multicall3Address = "0xcA11bde05977b3631167028862bE2a173976CA11"

// Insert more Network implementation here to support
// more chains
var supportedNetworks = []Network{
	EthereumMainnet,
	BSCMainnet,
	Matic,
}

var ErrNetworkNotFound = errors.New("network not found")

// Registry holds the built-in networks plus the custom ones stored as json
// files in its directory. Custom networks replace built-in ones sharing the
// same name or chain id.
type Registry struct {
	networks     map[string]Network
	networksByID map[uint64]Network
	// json file each custom network was loaded from or stored to
	files     map[Network]string
	customDir string
	logger    *zap.Logger
}

// NewRegistry loads built-in networks and every *.json network found in
// customDir. Broken custom files are logged and skipped.
func NewRegistry(customDir string, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	result := &Registry{
		networks:     map[string]Network{},
		networksByID: map[uint64]Network{},
		files:        map[Network]string{},
		customDir:    customDir,
		logger:       logger,
	}
	for _, n := range supportedNetworks {
		if _, err := result.register(n, false); err != nil {
			panic(err)
		}
	}

	if customDir == "" {
		return result
	}
	customNetworks, err := loadCustomNetworks(customDir, logger)
	if err != nil {
		logger.Warn("failed to load custom networks, continue with built-in networks", zap.Error(err))
		return result
	}
	for _, c := range customNetworks {
		n := c.network
		if _, found := result.networks[strings.ToLower(n.GetName())]; found {
			logger.Info("custom network overrides an existing one", zap.String("name", n.GetName()))
		}
		if _, found := result.networksByID[n.GetChainID()]; found {
			logger.Info("custom network overrides an existing chain id", zap.Uint64("chain_id", n.GetChainID()))
		}
		replaced, err := result.register(n, true)
		if err != nil {
			logger.Warn("ignore custom network", zap.String("name", n.GetName()), zap.Error(err))
			continue
		}
		for _, old := range replaced {
			delete(result.files, old)
		}
		result.files[n] = c.file
	}
	return result
}

// register adds n under its names and chain id. With replace, every network
// clashing with n is dropped and returned.
func (r *Registry) register(n Network, replace bool) ([]Network, error) {
	names := append([]string{n.GetName()}, n.GetAlternativeNames()...)
	clashes := []Network{}
	for _, name := range names {
		existing, found := r.networks[strings.ToLower(name)]
		if !found {
			continue
		}
		if !replace {
			return nil, fmt.Errorf("network with name or alternative name of '%s' already exists", name)
		}
		clashes = append(clashes, existing)
	}
	if existing, found := r.networksByID[n.GetChainID()]; found {
		if !replace {
			return nil, fmt.Errorf("network with chain id %d already exists", n.GetChainID())
		}
		clashes = append(clashes, existing)
	}
	// a replaced network is dropped entirely, alternative names included
	replaced := []Network{}
	for _, old := range clashes {
		if r.unregister(old) {
			replaced = append(replaced, old)
		}
	}
	for _, name := range names {
		r.networks[strings.ToLower(name)] = n
	}
	r.networksByID[n.GetChainID()] = n
	return replaced, nil
}

// unregister reports false when n was already dropped.
func (r *Registry) unregister(n Network) bool {
	removed := false
	for key, existing := range r.networks {
		if existing == n {
			delete(r.networks, key)
			removed = true
		}
	}
	if existing, found := r.networksByID[n.GetChainID()]; found && existing == n {
		delete(r.networksByID, n.GetChainID())
		removed = true
	}
	return removed
}

type customNetwork struct {
	network Network
	file    string
}

func loadCustomNetworks(dir string, logger *zap.Logger) ([]customNetwork, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob json files in %s: %w", dir, err)
	}
	sort.Strings(files)

	networks := []customNetwork{}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", file, err)
		}

		network, err := NewNetworkFromJSON(content)
		if err != nil {
			logger.Warn("failed to parse custom network, skipped", zap.String("file", file), zap.Error(err))
			continue
		}
		networks = append(networks, customNetwork{network: network, file: file})
	}
	return networks, nil
}

func (r *Registry) GetNetwork(name string) (Network, error) {
	res, found := r.networks[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func (r *Registry) GetNetworkByID(id uint64) (Network, error) {
	res, found := r.networksByID[id]
	if !found {
		return nil, fmt.Errorf("network id %d: %w", id, ErrNetworkNotFound)
	}
	return res, nil
}

// GetSupportedNetworks returns every network once, ordered by chain id.
func (r *Registry) GetSupportedNetworks() []Network {
	res := []Network{}
	for _, n := range r.networksByID {
		res = append(res, n)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].GetChainID() < res[j].GetChainID()
	})
	return res
}

func (r *Registry) GetSupportedNetworkNames() []string {
	res := []string{}
	for _, n := range r.GetSupportedNetworks() {
		res = append(res, n.GetName())
		res = append(res, n.GetAlternativeNames()...)
	}
	return res
}

// AddNetwork registers network and stores it to the registry directory so it
// is available on the next runs. The files of the custom networks it replaces
// are removed so they don't take their name or chain id back on the next run.
func (r *Registry) AddNetwork(network Network) error {
	if r.customDir == "" {
		return fmt.Errorf("registry has no directory to store custom networks")
	}

	content, err := network.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal network: %w", err)
	}

	replaced, err := r.register(network, true)
	if err != nil {
		return err
	}
	for _, old := range replaced {
		file, found := r.files[old]
		if !found {
			continue
		}
		delete(r.files, old)
		if err := os.Remove(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove the replaced network file %s: %w", file, err)
		}
		r.logger.Info("removed replaced custom network", zap.String("name", old.GetName()), zap.String("file", file))
	}

	if err := os.MkdirAll(r.customDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", r.customDir, err)
	}

	file := filepath.Join(r.customDir, fmt.Sprintf("%s.json", network.GetName()))
	if err := os.WriteFile(file, content, 0o644); err != nil {
		return fmt.Errorf("failed to write the new network to file: %w", err)
	}
	r.files[network] = file
	return nil
}
