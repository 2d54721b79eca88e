package wire

import (
	"sort"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"gossipsim/internal/vote"
)

// Field numbers of one framed diff entry.
const (
	proposalField = 1 // varint proposal ID
	votersField   = 2 // packed varint voter IDs
)

// AppendDiff appends the framed form of d to b and returns the result. Each
// proposal becomes a proposal-ID field followed by a packed voter-ID field.
func AppendDiff(b []byte, d vote.Diff) []byte {
	for _, proposal := range sortedProposals(d) {
		b = protowire.AppendTag(b, proposalField, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(proposal))

		var packed []byte
		for _, id := range d[proposal].Sorted() {
			packed = protowire.AppendVarint(packed, uint64(id))
		}
		b = protowire.AppendTag(b, votersField, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}
	return b
}

// DiffSize returns the framed size of d in bytes without encoding it.
func DiffSize(d vote.Diff) int {
	size := 0
	for proposal, voters := range d {
		packed := 0
		for id := range voters {
			packed += protowire.SizeVarint(uint64(id))
		}
		size += protowire.SizeTag(proposalField) + protowire.SizeVarint(uint64(proposal))
		size += protowire.SizeTag(votersField) + protowire.SizeBytes(packed)
	}
	return size
}

// ParseDiff decodes bytes produced by AppendDiff back into a diff.
func ParseDiff(b []byte) (vote.Diff, error) {
	d := make(vote.Diff)
	proposal := 0
	haveProposal := false

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, errors.Wrap(protowire.ParseError(n), "wire: tag")
		}
		b = b[n:]

		switch {
		case num == proposalField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, errors.Wrap(protowire.ParseError(n), "wire: proposal ID")
			}
			b = b[n:]
			proposal = int(v)
			haveProposal = true

		case num == votersField && typ == protowire.BytesType:
			if !haveProposal {
				return nil, errors.New("wire: voter field before any proposal field")
			}
			packed, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, errors.Wrap(protowire.ParseError(n), "wire: voter IDs")
			}
			b = b[n:]

			voters := make(vote.Set)
			for len(packed) > 0 {
				id, n := protowire.ConsumeVarint(packed)
				if n < 0 {
					return nil, errors.Wrap(protowire.ParseError(n), "wire: voter ID")
				}
				packed = packed[n:]
				voters.Add(int(id))
			}
			d[proposal] = voters

		default:
			return nil, errors.Errorf("wire: unexpected field %d with type %d", num, typ)
		}
	}
	return d, nil
}

func sortedProposals(d vote.Diff) []int {
	out := make([]int, 0, len(d))
	for proposal := range d {
		out = append(out, proposal)
	}
	sort.Ints(out)
	return out
}
