package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yyoncho/discwire/wire"
)

func TestLoadVectors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.toml")
	content := `
[[vector]]
name = "ping"
hex = "01c20105"
kind = "ping"
reqid = "01"
roundtrip = true

[[vector]]
name = "ticket"
hex = "0cc101"
kind = "ticket"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	vectors, err := loadVectors(path)
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	require.Equal(t, "ping", vectors[0].Name)
	require.True(t, vectors[0].Roundtrip)
	require.Equal(t, "ticket", vectors[1].Kind)
}

func TestCheckVector(t *testing.T) {
	codec := wire.New()
	buf, err := codec.Encode(wire.ReqID{0x01}, &wire.Ping{ENRSeq: 5})
	require.NoError(t, err)

	good := vector{
		Name:      "ping",
		Hex:       hex.EncodeToString(buf),
		Kind:      "ping",
		ReqID:     "01",
		Roundtrip: true,
	}
	require.NoError(t, checkVector(codec, good))

	wrongKind := good
	wrongKind.Kind = "pong"
	require.Error(t, checkVector(codec, wrongKind))

	wrongReqID := good
	wrongReqID.ReqID = "02"
	require.Error(t, checkVector(codec, wrongReqID))

	badHex := good
	badHex.Hex = "zz"
	require.Error(t, checkVector(codec, badHex))
}

func TestRunVectorsReportsFailures(t *testing.T) {
	codec := wire.New()
	buf, err := codec.Encode(wire.ReqID{0x01}, &wire.Ping{ENRSeq: 5})
	require.NoError(t, err)

	var out bytes.Buffer
	err = runVectors(codec, []vector{
		{Name: "good", Hex: hex.EncodeToString(buf), Kind: "ping"},
		{Name: "bad", Hex: "00", Kind: "ping"},
	}, &out)
	require.Error(t, err)
	require.Contains(t, out.String(), "ok   good")
	require.Contains(t, out.String(), "FAIL bad")
}
