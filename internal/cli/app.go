package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"MonthlyMasti/internal/client"
	"MonthlyMasti/internal/form"
	"MonthlyMasti/internal/session"
)

// App 终端客户端：登录、填表、提交、看板
type App struct {
	api     *client.Client
	session *session.Manager
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(serverURL string) *App {
	api := client.New(serverURL)
	return &App{
		api:     api,
		session: session.NewManager(api),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

// getSimpleText 可在测试中替换
var getSimpleText = func(reader *bufio.Reader, prompt string, out io.Writer) (string, error) {
	fmt.Fprintf(out, "%s: ", prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "1) Sign in")
		fmt.Fprintln(a.out, "2) Sign up")
		fmt.Fprintln(a.out, "3) New check-in")
		fmt.Fprintln(a.out, "4) Dashboard")
		fmt.Fprintln(a.out, "q) Quit")

		choice, err := getSimpleText(a.reader, "Choose", a.out)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.signIn(ctx)
		case "2":
			err = a.signUp(ctx)
		case "3":
			err = a.checkIn(ctx)
		case "4":
			err = a.dashboard(ctx)
		case "q":
			return nil
		default:
			continue
		}

		if err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
	}
}

func (a *App) signIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getSimpleText(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	if err := a.session.SignIn(ctx, email, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Signed in!")
	return nil
}

func (a *App) signUp(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getSimpleText(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Display name", a.out)
	if err != nil {
		return err
	}

	if err := a.session.SignUp(ctx, email, password, name); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created!")
	return nil
}

// checkIn 五步向导 + 提交流水线
func (a *App) checkIn(ctx context.Context) error {
	prefill := ""
	if u := a.session.CurrentUser(); u != nil {
		if u.DisplayName != "" {
			prefill = u.DisplayName
		} else {
			prefill = u.Email
		}
	}

	draft := form.NewDraft(prefill)

	steps := []struct {
		title  string
		fields [][2]string // prompt, field key
	}{
		{"Basic info", [][2]string{{"Your name", form.FieldName}, {"Where are you", form.FieldLocation}}},
		{"Month snapshot", [][2]string{{"Month in a few words", form.FieldShortDesc}, {"Mood", form.FieldMood}, {"Color of the month", form.FieldColor}}},
		{"Memories", [][2]string{{"Best memory", form.FieldMemory}, {"A story worth telling", form.FieldStory}}},
		{"Share & recommend", [][2]string{{"Recommendation", form.FieldRecommendation}, {"Message to everyone", form.FieldMessage}}},
	}

	for _, step := range steps {
		fmt.Fprintf(a.out, "\n-- %s --\n", step.title)
		for _, f := range step.fields {
			prompt := f[0]
			if cur := draft.Field(f[1]); cur != "" {
				prompt = fmt.Sprintf("%s [%s]", prompt, cur)
			}
			val, err := getSimpleText(a.reader, prompt, a.out)
			if err != nil {
				return err
			}
			if val != "" {
				draft.SetField(f[1], val)
			}
		}

		if !draft.Next() {
			fmt.Fprintf(a.out, "%s\n", draft.Error())
			return nil
		}
	}

	// 最后一步：媒体文件
	fmt.Fprintln(a.out, "\n-- Photos & selfie --")
	for len(draft.Photos()) < form.MaxPhotos {
		path, err := getSimpleText(a.reader, "Photo path (empty to continue)", a.out)
		if err != nil {
			return err
		}
		if path == "" {
			break
		}
		photo, err := loadPhoto(path)
		if err != nil {
			fmt.Fprintf(a.out, "Skipping %s: %v\n", path, err)
			continue
		}
		draft.AddPhotos(photo)
	}

	selfiePath, err := getSimpleText(a.reader, "Selfie path (optional)", a.out)
	if err != nil {
		return err
	}
	if selfiePath != "" {
		selfie, err := loadPhoto(selfiePath)
		if err != nil {
			fmt.Fprintf(a.out, "Skipping selfie: %v\n", err)
		} else {
			draft.SetSelfie(&selfie)
		}
	}

	pipeline := form.NewPipeline(a.api, a.api)
	if err := pipeline.Run(ctx, draft); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Check-in submitted! 🎉")
	return nil
}

func (a *App) dashboard(ctx context.Context) error {
	data, err := a.api.Dashboard(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\n%s photos in the feed\n", strconv.Itoa(len(data.Feed)))
	for _, group := range data.Groups {
		fmt.Fprintf(a.out, "\n== %s (%d check-ins)\n", group.Name, len(group.Entries))
		for _, e := range group.Entries {
			fmt.Fprintf(a.out, "  %s  %s — %s\n", e.Date, e.Location, e.ShortDesc)
		}
	}
	return nil
}

func loadPhoto(path string) (form.Photo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return form.Photo{}, err
	}

	name := path
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}

	return form.Photo{Filename: name, Data: data}, nil
}
