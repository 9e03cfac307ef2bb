package contract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// DeploymentRecord is the address an interface description's contract is
// instantiated at on one specific network.
type DeploymentRecord struct {
	Address common.Address
}

// Description is one contract's interface description: its ABI plus the
// per-network deployment map. Immutable once parsed; a Proxy holds exactly
// one Description for its whole lifetime.
//
// Overloaded method names are not disambiguated by this layer: the first
// descriptor carrying a name owns it, later overloads get the parser's
// suffixed aliases and are otherwise unreachable by plain name.
type Description struct {
	Name        string
	ABI         abi.ABI
	Deployments map[uint64]DeploymentRecord
}

type artifactJSON struct {
	ContractName string                            `json:"contractName"`
	ABI          json.RawMessage                   `json:"abi"`
	Networks     map[string]artifactDeploymentJSON `json:"networks"`
}

type artifactDeploymentJSON struct {
	Address string `json:"address"`
}

// ParseDescription parses either a full artifact document
// ({contractName, abi, networks}) or a bare ABI array. A bare array yields
// a Description with an empty deployment map, usable only with an explicit
// address override.
func ParseDescription(content []byte) (*Description, error) {
	trimmed := strings.TrimSpace(string(content))
	if strings.HasPrefix(trimmed, "[") {
		parsed, err := abi.JSON(strings.NewReader(trimmed))
		if err != nil {
			return nil, fmt.Errorf("couldn't parse abi: %w", err)
		}
		return &Description{
			ABI:         parsed,
			Deployments: map[uint64]DeploymentRecord{},
		}, nil
	}

	doc := artifactJSON{}
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("couldn't parse artifact document: %w", err)
	}
	if len(doc.ABI) == 0 {
		return nil, fmt.Errorf("artifact document has no abi")
	}
	parsed, err := abi.JSON(bytes.NewReader(doc.ABI))
	if err != nil {
		return nil, fmt.Errorf("couldn't parse abi of %s: %w", doc.ContractName, err)
	}

	deployments := map[uint64]DeploymentRecord{}
	for idStr, record := range doc.Networks {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("deployment map has non-numeric network id %q", idStr)
		}
		if !common.IsHexAddress(record.Address) {
			return nil, fmt.Errorf("deployment record for network %d has invalid address %q", id, record.Address)
		}
		deployments[id] = DeploymentRecord{Address: common.HexToAddress(record.Address)}
	}

	return &Description{
		Name:        doc.ContractName,
		ABI:         parsed,
		Deployments: deployments,
	}, nil
}

// LoadDescription reads and parses an artifact file from disk.
func LoadDescription(path string) (*Description, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read %s: %w", path, err)
	}
	desc, err := ParseDescription(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}

// DeployedAt returns the deployment record's address for networkID.
func (d *Description) DeployedAt(networkID uint64) (common.Address, bool) {
	record, found := d.Deployments[networkID]
	return record.Address, found
}

// Methods returns the description's method descriptors sorted by name.
func (d *Description) Methods() []abi.Method {
	names := make([]string, 0, len(d.ABI.Methods))
	for name := range d.ABI.Methods {
		names = append(names, name)
	}
	sort.Strings(names)
	methods := make([]abi.Method, 0, len(names))
	for _, name := range names {
		methods = append(methods, d.ABI.Methods[name])
	}
	return methods
}
