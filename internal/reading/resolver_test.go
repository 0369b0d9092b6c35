package reading

import (
	"errors"
	"testing"

	"github.com/at-ishikawa/katsuyo/internal/conjugation"
	mock_reading "github.com/at-ishikawa/katsuyo/internal/mocks/reading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		verb         string
		setupMock    func(m *mock_reading.MockResolver)
		want         conjugation.VerbClass
		wantErr      bool
		wantSentinel error
	}{
		{
			name: "kanji ichidan verb is classified by its reading",
			verb: "見る",
			setupMock: func(m *mock_reading.MockResolver) {
				m.EXPECT().Resolve("見る").Return("みる", nil)
			},
			want: conjugation.VerbClassIchidan,
		},
		{
			name: "kanji godan verb stays godan",
			verb: "作る",
			setupMock: func(m *mock_reading.MockResolver) {
				m.EXPECT().Resolve("作る").Return("つくる", nil)
			},
			want: conjugation.VerbClassGodan,
		},
		{
			name: "exceptions are matched before resolving",
			verb: "帰る",
			setupMock: func(m *mock_reading.MockResolver) {
				m.EXPECT().Resolve(gomock.Any()).Times(0)
			},
			want: conjugation.VerbClassGodan,
		},
		{
			name: "kuru-like reading without くる in the written form",
			verb: "送る",
			setupMock: func(m *mock_reading.MockResolver) {
				m.EXPECT().Resolve("送る").Return("おくる", nil)
			},
			want: conjugation.VerbClassGodan,
		},
		{
			name: "kuru reading of the kanji form",
			verb: "来る",
			setupMock: func(m *mock_reading.MockResolver) {
				m.EXPECT().Resolve("来る").Return("くる", nil)
			},
			want: conjugation.VerbClassKuru,
		},
		{
			name: "suru compound",
			verb: "勉強する",
			setupMock: func(m *mock_reading.MockResolver) {
				m.EXPECT().Resolve("勉強する").Return("べんきょうする", nil)
			},
			want: conjugation.VerbClassSuru,
		},
		{
			name: "suru reading without する in the written form",
			verb: "為る",
			setupMock: func(m *mock_reading.MockResolver) {
				m.EXPECT().Resolve("為る").Return("する", nil)
			},
			want: conjugation.VerbClassGodan,
		},
		{
			name: "empty reading falls back to the written form",
			verb: "食べる",
			setupMock: func(m *mock_reading.MockResolver) {
				m.EXPECT().Resolve("食べる").Return("", nil)
			},
			want: conjugation.VerbClassIchidan,
		},
		{
			name: "resolver error",
			verb: "見る",
			setupMock: func(m *mock_reading.MockResolver) {
				m.EXPECT().Resolve("見る").Return("", errors.New("tokenizer failure"))
			},
			wantErr: true,
		},
		{
			name:         "empty verb",
			verb:         "",
			setupMock:    func(m *mock_reading.MockResolver) {},
			wantErr:      true,
			wantSentinel: conjugation.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			resolver := mock_reading.NewMockResolver(ctrl)
			tt.setupMock(resolver)

			got, err := Classify(resolver, tt.verb)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantSentinel != nil {
					assert.ErrorIs(t, err, tt.wantSentinel)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
