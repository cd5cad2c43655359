package store

import (
	"encoding/binary"

	bolt "go.etcd.io/bbolt"
)

const bucketCmd = "cmd"

// Cmd is an entry in the command history.
type Cmd struct {
	Text string
	Seq  int
}

func init() {
	initDB["initialize command history table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		return err
	}
}

// AddCmd adds a new command to the command history. It implements
// histutil.Appender.
func (s *DBStore) AddCmd(cmd string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		var err error
		seq, err = addCmd(tx.Bucket([]byte(bucketCmd)), cmd)
		return err
	})
	return int(seq), err
}

func addCmd(b *bolt.Bucket, cmd string) (uint64, error) {
	seq, err := b.NextSequence()
	if err != nil {
		return 0, err
	}
	return seq, b.Put(marshalSeq(seq), []byte(cmd))
}

// LastCmds returns the n most recent commands, oldest first.
func (s *DBStore) LastCmds(n int) ([]Cmd, error) {
	var cmds []Cmd
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketCmd)).Cursor()
		for k, v := c.Last(); k != nil && len(cmds) < n; k, v = c.Prev() {
			cmds = append(cmds, Cmd{Text: string(v), Seq: int(unmarshalSeq(k))})
		}
		return nil
	})
	for i, j := 0, len(cmds)-1; i < j; i, j = i+1, j-1 {
		cmds[i], cmds[j] = cmds[j], cmds[i]
	}
	return cmds, err
}

// ReplaceCmds replaces the whole command history with texts in a single
// transaction. Sequence numbers keep increasing across replacements.
func (s *DBStore) ReplaceCmds(texts []string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.First() {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		for _, text := range texts {
			if _, err := addCmd(b, text); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadCmds implements histutil.Store.
func (s *DBStore) LoadCmds(max int) ([]string, error) {
	cmds, err := s.LastCmds(max)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(cmds))
	for i, cmd := range cmds {
		texts[i] = cmd.Text
	}
	return texts, nil
}

// SaveCmds implements histutil.Store.
func (s *DBStore) SaveCmds(cmds []string, max int) error {
	if len(cmds) > max {
		cmds = cmds[len(cmds)-max:]
	}
	return s.ReplaceCmds(cmds)
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
