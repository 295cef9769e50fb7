package dvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRemoteList(t *testing.T) {
	got := ParseRemoteList("origin\t/data\nbackup\t/mnt/backup\n")
	assert.Equal(t, []RemoteRecord{
		{Name: "origin", Path: "/data"},
		{Name: "backup", Path: "/mnt/backup"},
	}, got)
}

func TestParseRemoteList_crlf(t *testing.T) {
	got := ParseRemoteList("origin\ts3://bucket/x\r\nbackup\t/mnt/backup\r\n")
	require.Len(t, got, 2)
	assert.Equal(t, "s3://bucket/x", got[0].Path)
	assert.Equal(t, "/mnt/backup", got[1].Path)
}

func TestParseRemoteList_malformedLine(t *testing.T) {
	got := ParseRemoteList("origin\t/data\nbadline\n")
	require.Len(t, got, 2)
	assert.Equal(t, RemoteRecord{Name: "badline", Path: ""}, got[1])
}

func TestParseRemoteList_splitsOnFirstTab(t *testing.T) {
	got := ParseRemoteList("odd\t/path\twith tab\n")
	require.Len(t, got, 1)
	assert.Equal(t, "/path\twith tab", got[0].Path)
}

func TestParseRemoteList_empty(t *testing.T) {
	assert.Empty(t, ParseRemoteList(""))
	assert.Empty(t, ParseRemoteList("\n\r\n"))
}

func TestRemoteRegistry(t *testing.T) {
	var r RemoteRegistry
	assert.Empty(t, r.List())

	r.Replace([]RemoteRecord{{Name: "origin", Path: "/data"}})
	r.Replace([]RemoteRecord{{Name: "backup", Path: "/mnt/backup"}})

	assert.Equal(t, []RemoteRecord{{Name: "backup", Path: "/mnt/backup"}}, r.List())

	_, ok := r.Lookup("origin")
	assert.False(t, ok, "previous set is discarded")
	rec, ok := r.Lookup("backup")
	require.True(t, ok)
	assert.Equal(t, "/mnt/backup", rec.Path)
}
