package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tranvictor/ethproxy/config"
	"github.com/tranvictor/ethproxy/networks"
	"github.com/tranvictor/ethproxy/ui"
)

const txTestArtifact = `{
	"contractName": "Vault",
	"abi": [
		{
			"type": "function", "name": "deposit", "stateMutability": "payable",
			"inputs": [], "outputs": []
		}
	],
	"networks": {"1": {"address": "0x9642b23Ed1E01Df1092B92641051881a322F5D4E"}}
}`

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "artifact.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write artifact: %s", err)
	}
	return path
}

// Declining the confirmation prompt exercises the whole command up to the
// card without touching a transport.
func TestTxConfirmationShowsScaledValue(t *testing.T) {
	if err := config.Setup(config.Registry{
		Network:          networks.EthereumMainnet,
		RequestTransport: stubTransport{},
	}); err != nil {
		t.Fatalf("setup: %s", err)
	}

	rec := ui.NewRecordingUI("n")
	prevUI := terminal
	prevNetwork, prevValue, prevYes, prevAddr := networkFlag, txValueFlag, txYesFlag, addressFlag
	terminal = rec
	networkFlag, txValueFlag, txYesFlag, addressFlag = "mainnet", "1.5 ether", false, ""
	defer func() {
		terminal = prevUI
		networkFlag, txValueFlag, txYesFlag, addressFlag = prevNetwork, prevValue, prevYes, prevAddr
	}()

	err := txCmd.RunE(txCmd, []string{writeArtifact(t, txTestArtifact), "deposit"})
	if err != nil {
		t.Fatalf("tx: %s", err)
	}

	if !rec.HasMessage("Value: 1.5 ETH (1500000000000000000 wei)") {
		t.Fatalf("expected the card to show the scaled native amount, got %v", rec.Entries())
	}
	if !rec.HasMessage("cancelled") {
		t.Fatal("expected the declined transaction to be reported as cancelled")
	}
}
