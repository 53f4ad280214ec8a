package params

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	p := Default()
	want := Parameters{
		Width: 1000, Height: 1000,
		WinReward: 3, LossReward: 0, DrawReward: 0, CooperationReward: 3,
		HardeningRate: 1, SofteningRate: 1,
		Seed: 1,
	}
	if p != want {
		t.Fatalf("Default() = %+v, want %+v", p, want)
	}

	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != want {
		t.Fatalf("embedded defaults = %+v, want %+v", loaded, want)
	}
}

func TestKindsCoverEverySlot(t *testing.T) {
	if len(Kinds()) != 8 {
		t.Fatalf("expected 8 kinds, got %d", len(Kinds()))
	}
	for _, k := range Kinds() {
		got, err := ParseKind(k.Key())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.Key(), got, err)
		}
		if k.Description() == "" || k.String() == "" {
			t.Fatalf("kind %d missing name or description", k)
		}
	}
	if _, err := ParseKind("gravity"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("ParseKind(gravity) err = %v", err)
	}
}

func TestSetGet(t *testing.T) {
	p := Default()
	p.Set(WinReward, Byte(7))
	if got := p.Get(WinReward).Byte(); got != 7 {
		t.Fatalf("Get(WinReward) = %d, want 7", got)
	}
	if p.WinReward != 7 {
		t.Fatalf("typed field not updated: %d", p.WinReward)
	}
	p.Set(FieldHeight, Word(64))
	if got := p.Get(FieldHeight).Word(); got != 64 {
		t.Fatalf("Get(FieldHeight) = %d, want 64", got)
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s did not panic", name)
		}
	}()
	fn()
}

func TestWrongTypeAccessPanics(t *testing.T) {
	p := Default()
	p.Set(WinReward, Byte(7))
	mustPanic(t, "Get(WinReward).Word()", func() { _ = p.Get(WinReward).Word() })
	mustPanic(t, "Get(FieldWidth).Byte()", func() { _ = p.Get(FieldWidth).Byte() })
	mustPanic(t, "Set(FieldWidth, Byte)", func() { p.Set(FieldWidth, Byte(1)) })
}

func TestSetString(t *testing.T) {
	p := Default()
	if err := p.SetString(DrawReward, "9"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	if p.DrawReward != 9 {
		t.Fatalf("DrawReward = %d, want 9", p.DrawReward)
	}
	if err := p.SetString(DrawReward, "256"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("SetString(256) err = %v", err)
	}
	if err := p.SetString(FieldWidth, "0"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("SetString(width 0) err = %v", err)
	}
	if err := p.SetString(FieldWidth, "wide"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(path, []byte("field_width: 32\nwin_reward: 9\nseed: 42\n"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Width != 32 || p.Height != 1000 || p.WinReward != 9 || p.CooperationReward != 3 || p.Seed != 42 {
		t.Fatalf("unexpected merge result %+v", p)
	}

	out := filepath.Join(dir, "out.yaml")
	if err := p.WriteYAML(out); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	again, err := Load(out)
	if err != nil {
		t.Fatalf("Load written file: %v", err)
	}
	if again != p {
		t.Fatalf("written config reloads as %+v, want %+v", again, p)
	}
}

func TestLoadRejectsEmptyField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("field_height: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Load err = %v, want ErrOutOfRange", err)
	}
}

func TestSnapshotGroups(t *testing.T) {
	p := Default()
	snap := p.Snapshot()
	if len(snap.Groups) != 3 {
		t.Fatalf("got %d groups", len(snap.Groups))
	}
	seen := 0
	for _, g := range snap.Groups {
		seen += len(g.Params)
	}
	if seen != 9 {
		t.Fatalf("snapshot lists %d params, want 9", seen)
	}
}
