package service

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/sha3"
)

// checksumExt names the sidecar file holding a backup's SHA3-256 digest.
const checksumExt = ".sha3"

func newChecksum() hash.Hash {
	return sha3.New256()
}

func writeChecksum(backupFile string, h hash.Hash) error {
	sum := hex.EncodeToString(h.Sum(nil))
	return os.WriteFile(backupFile+checksumExt, []byte(sum+"\n"), 0644)
}

// verifyChecksum compares a backup against its sidecar digest. Backups
// without a sidecar are accepted as is.
func verifyChecksum(backupFile string) error {
	want, err := os.ReadFile(backupFile + checksumExt)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	f, err := os.Open(backupFile)
	if err != nil {
		return err
	}
	defer f.Close()

	h := newChecksum()
	if _, err := io.Copy(h, f); err != nil {
		return err
	}
	if got := hex.EncodeToString(h.Sum(nil)); got != strings.TrimSpace(string(want)) {
		return fmt.Errorf("checksum mismatch for %s", backupFile)
	}
	return nil
}
