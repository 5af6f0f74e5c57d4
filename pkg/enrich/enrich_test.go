package enrich

import (
	"reflect"
	"testing"

	"writergraph/pkg/common"
)

var (
	testShows = []common.Show{
		{ID: 10, IMDBID: "tt0010", Title: "Alpha"},
		{ID: 20, IMDBID: "tt0020", Title: "Beta"},
		{ID: 30, IMDBID: "tt0030", Title: "Gamma"},
	}
	testWriters = []common.Writer{
		{ID: 1, IMDBID: "nm0001", Name: "Avery"},
		{ID: 2, IMDBID: "nm0002", Name: "Blake"},
		{ID: 3, IMDBID: "nm0003", Name: "Casey"},
	}
)

func TestShows(t *testing.T) {
	tests := []struct {
		name    string
		credits []common.Credit
		want    map[int][]int // show id -> expected writer ids, in order
	}{
		{
			name: "writers follow credit supply order",
			credits: []common.Credit{
				{ShowID: 10, WriterID: 2},
				{ShowID: 10, WriterID: 1},
				{ShowID: 20, WriterID: 3},
			},
			want: map[int][]int{10: {2, 1}, 20: {3}, 30: nil},
		},
		{
			name: "dangling writer reference dropped",
			credits: []common.Credit{
				{ShowID: 10, WriterID: 1},
				{ShowID: 10, WriterID: 99},
				{ShowID: 10, WriterID: 2},
			},
			want: map[int][]int{10: {1, 2}, 20: nil, 30: nil},
		},
		{
			name: "dangling show reference dropped",
			credits: []common.Credit{
				{ShowID: 77, WriterID: 1},
			},
			want: map[int][]int{10: nil, 20: nil, 30: nil},
		},
		{
			name: "duplicate credits keep duplicate entries",
			credits: []common.Credit{
				{ShowID: 20, WriterID: 3, Role: "creator"},
				{ShowID: 20, WriterID: 3, Role: "written by"},
			},
			want: map[int][]int{10: nil, 20: {3, 3}, 30: nil},
		},
		{
			name:    "no credits",
			credits: nil,
			want:    map[int][]int{10: nil, 20: nil, 30: nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shows(testShows, testWriters, tt.credits)

			if len(got) != len(testShows) {
				t.Fatalf("Shows() returned %d shows, want %d", len(got), len(testShows))
			}
			for i, enriched := range got {
				if !reflect.DeepEqual(enriched.Show, testShows[i]) {
					t.Errorf("show[%d] = %+v, want original %+v", i, enriched.Show, testShows[i])
				}

				var ids []int
				for _, writer := range enriched.Writers {
					ids = append(ids, writer.ID)
				}
				if !reflect.DeepEqual(ids, tt.want[enriched.ID]) {
					t.Errorf("show %d writers = %v, want %v", enriched.ID, ids, tt.want[enriched.ID])
				}
			}
		})
	}
}

func TestWriters(t *testing.T) {
	credits := []common.Credit{
		{ShowID: 30, WriterID: 1},
		{ShowID: 10, WriterID: 1},
		{ShowID: 20, WriterID: 2},
		{ShowID: 99, WriterID: 2},
	}

	got := Writers(testWriters, testShows, credits)

	if len(got) != len(testWriters) {
		t.Fatalf("Writers() returned %d writers, want %d", len(got), len(testWriters))
	}

	want := map[int][]int{1: {30, 10}, 2: {20}, 3: nil}
	for i, enriched := range got {
		if !reflect.DeepEqual(enriched.Writer, testWriters[i]) {
			t.Errorf("writer[%d] = %+v, want original %+v", i, enriched.Writer, testWriters[i])
		}

		var ids []int
		for _, show := range enriched.Shows {
			ids = append(ids, show.ID)
		}
		if !reflect.DeepEqual(ids, want[enriched.ID]) {
			t.Errorf("writer %d shows = %v, want %v", enriched.ID, ids, want[enriched.ID])
		}
	}
}

func TestShowsEmptyInputs(t *testing.T) {
	if got := Shows(nil, testWriters, nil); len(got) != 0 {
		t.Errorf("Shows(nil, ...) returned %d results, want 0", len(got))
	}
	if got := Writers(nil, testShows, nil); len(got) != 0 {
		t.Errorf("Writers(nil, ...) returned %d results, want 0", len(got))
	}
}

func TestShowsDoesNotMutateInputs(t *testing.T) {
	shows := []common.Show{{ID: 10, IMDBID: "tt0010", Title: "Alpha"}}
	writers := []common.Writer{{ID: 1, IMDBID: "nm0001", Name: "Avery"}}
	credits := []common.Credit{{ShowID: 10, WriterID: 1}}

	showsCopy := make([]common.Show, len(shows))
	copy(showsCopy, shows)
	writersCopy := make([]common.Writer, len(writers))
	copy(writersCopy, writers)

	Shows(shows, writers, credits)
	Writers(writers, shows, credits)

	if !reflect.DeepEqual(shows, showsCopy) {
		t.Errorf("shows mutated: %+v", shows)
	}
	if !reflect.DeepEqual(writers, writersCopy) {
		t.Errorf("writers mutated: %+v", writers)
	}
}
