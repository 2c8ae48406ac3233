package reader

import (
	"crypto/tls"
	"io"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
	"github.com/emersion/go-message/mail"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
	"github.com/kbukum/pipekit/logger"
)

// Environment variables with the IMAP connection details.
const (
	EnvIMAPHost = "IMAP_HOST"
	EnvIMAPPort = "IMAP_PORT"
	EnvIMAPUser = "IMAP_USER"
	EnvIMAPPw   = "IMAP_PW"
)

// GetEmail polls an IMAP folder, saves the attachments of new emails
// and forwards the saved file names as a list. The connection details
// come from the environment, optionally loaded from a .env file. Runs
// until the session is stopped.
type GetEmail struct {
	flow.Base

	DotenvPath         string
	Folder             string
	OnlyUnseen         bool
	MarkRead           bool
	Regexp             string
	OutputDir          string
	PollWait           time.Duration
	FromPlaceholder    string
	SubjectPlaceholder string

	pattern *regexp.Regexp
	host    string
	user    string
	pw      string
}

func NewGetEmail() *GetEmail {
	return &GetEmail{Folder: "INBOX", PollWait: 30 * time.Second}
}

func (r *GetEmail) Name() string { return "get-email" }

func (r *GetEmail) Description() string {
	return "Retrieves emails from the specified IMAP folder, saves the attachments in the output directory " +
		"and forwards the file names of the saved attachments as a list."
}

func (r *GetEmail) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&r.DotenvPath, "dotenv_path", "d", "",
		"the .env file to load the IMAP environment variables from ("+EnvIMAPHost+"|"+EnvIMAPPort+"|"+EnvIMAPUser+"|"+EnvIMAPPw+")")
	fs.StringVarP(&r.Folder, "folder", "f", "INBOX", "the IMAP folder to obtain emails from")
	fs.BoolVarP(&r.OnlyUnseen, "only_unseen", "u", false, "whether to only retrieve unseen emails")
	fs.BoolVarP(&r.MarkRead, "mark_as_read", "R", false, "whether to mark the emails as read after retrieval")
	fs.StringVarP(&r.Regexp, "regexp", "r", "", "the regular expression that the attachment file names must match")
	fs.StringVarP(&r.OutputDir, "output_dir", "o", "", "the directory to store the attachments in; may contain placeholders")
	fs.DurationVarP(&r.PollWait, "poll_wait", "w", 30*time.Second, "the poll interval")
	fs.StringVarP(&r.FromPlaceholder, "from_placeholder", "F", "", "the optional placeholder name to store the FROM email address under, without curly brackets")
	fs.StringVarP(&r.SubjectPlaceholder, "subject_placeholder", "S", "", "the optional placeholder name to store the SUBJECT under, without curly brackets")
}

func (r *GetEmail) Init(sess *flow.Session) error {
	r.Attach(r.Name(), sess)
	if r.OutputDir == "" {
		return errors.Configuration("no output directory provided")
	}
	if r.Regexp != "" {
		pattern, err := regexp.Compile(r.Regexp)
		if err != nil {
			return errors.Configuration("invalid pattern %q", r.Regexp).WithCause(err)
		}
		r.pattern = pattern
	}
	if r.DotenvPath != "" {
		if err := godotenv.Load(sess.ExpandPlaceholders(r.DotenvPath)); err != nil {
			return errors.Load(r.DotenvPath, err)
		}
	} else {
		// best effort, the variables may already be exported
		_ = godotenv.Load()
	}
	r.host = os.Getenv(EnvIMAPHost)
	if port := os.Getenv(EnvIMAPPort); port != "" {
		r.host = r.host + ":" + port
	} else {
		r.host = r.host + ":993"
	}
	r.user = os.Getenv(EnvIMAPUser)
	r.pw = os.Getenv(EnvIMAPPw)
	if r.host == ":993" || r.user == "" {
		return errors.Configuration("IMAP connection details incomplete, required env vars: %s, %s, %s, %s",
			EnvIMAPHost, EnvIMAPPort, EnvIMAPUser, EnvIMAPPw)
	}
	return nil
}

func (r *GetEmail) Read(emit func(flow.Payload) error) error {
	for !r.Session.Stopped() {
		files, err := r.poll()
		if err != nil {
			return err
		}
		if len(files) > 0 {
			if err := emit(flow.List(files)); err != nil {
				return err
			}
		}
		deadline := time.Now().Add(r.PollWait)
		for time.Now().Before(deadline) && !r.Session.Stopped() {
			time.Sleep(100 * time.Millisecond)
		}
	}
	return nil
}

func (r *GetEmail) Finished() bool { return false }

// poll connects, retrieves the matching emails and saves their
// attachments, returning the saved paths.
func (r *GetEmail) poll() ([]any, error) {
	client, err := imapclient.DialTLS(r.host, &imapclient.Options{
		TLSConfig: &tls.Config{ServerName: hostOnly(r.host)},
	})
	if err != nil {
		return nil, errors.Newf(errors.ErrCodeRuntime, "failed to connect to IMAP server %s", r.host).WithCause(err)
	}
	defer client.Close()

	if err := client.Login(r.user, r.pw).Wait(); err != nil {
		return nil, errors.Newf(errors.ErrCodeRuntime, "IMAP login failed for %s", r.user).WithCause(err)
	}
	defer client.Logout()

	if _, err := client.Select(r.Folder, nil).Wait(); err != nil {
		return nil, errors.Newf(errors.ErrCodeRuntime, "failed to select folder %s", r.Folder).WithCause(err)
	}

	criteria := &imap.SearchCriteria{}
	if r.OnlyUnseen {
		criteria.NotFlag = []imap.Flag{imap.FlagSeen}
	}
	search, err := client.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, errors.Newf(errors.ErrCodeRuntime, "IMAP search failed").WithCause(err)
	}
	uids := search.AllUIDs()
	if len(uids) == 0 {
		return nil, nil
	}

	outputDir := r.Session.ExpandPlaceholders(r.OutputDir)
	var uidSet imap.UIDSet
	uidSet.AddNum(uids...)
	fetch := client.Fetch(uidSet, &imap.FetchOptions{
		BodySection: []*imap.FetchItemBodySection{{}},
	})
	defer fetch.Close()

	var files []any
	for {
		msg := fetch.Next()
		if msg == nil {
			break
		}
		for {
			item := msg.Next()
			if item == nil {
				break
			}
			body, ok := item.(imapclient.FetchItemDataBodySection)
			if !ok {
				continue
			}
			saved, err := r.saveAttachments(body.Literal, outputDir)
			if err != nil {
				r.Log.Error("failed to extract attachments", logger.ErrorFields("extract", err))
				continue
			}
			files = append(files, saved...)
		}
	}
	if err := fetch.Close(); err != nil {
		return nil, errors.Newf(errors.ErrCodeRuntime, "IMAP fetch failed").WithCause(err)
	}

	if r.MarkRead {
		store := client.Store(uidSet, &imap.StoreFlags{
			Op:    imap.StoreFlagsAdd,
			Flags: []imap.Flag{imap.FlagSeen},
		}, nil)
		if err := store.Close(); err != nil {
			r.Log.Error("failed to mark emails as read", logger.ErrorFields("store", err))
		}
	}
	return files, nil
}

func (r *GetEmail) saveAttachments(literal io.Reader, outputDir string) ([]any, error) {
	mr, err := mail.CreateReader(literal)
	if err != nil {
		return nil, err
	}
	if r.FromPlaceholder != "" {
		if addrs, err := mr.Header.AddressList("From"); err == nil && len(addrs) > 0 {
			r.Session.Placeholders.Set(r.FromPlaceholder, addrs[0].Address)
		}
	}
	if r.SubjectPlaceholder != "" {
		if subject, err := mr.Header.Subject(); err == nil {
			r.Session.Placeholders.Set(r.SubjectPlaceholder, subject)
		}
	}
	var saved []any
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return saved, err
		}
		header, ok := part.Header.(*mail.AttachmentHeader)
		if !ok {
			continue
		}
		filename, err := header.Filename()
		if err != nil || filename == "" {
			continue
		}
		if r.pattern != nil && !r.pattern.MatchString(filename) {
			continue
		}
		path := filepath.Join(outputDir, filename)
		fp, err := os.Create(path)
		if err != nil {
			return saved, err
		}
		if _, err := io.Copy(fp, part.Body); err != nil {
			fp.Close()
			return saved, err
		}
		if err := fp.Close(); err != nil {
			return saved, err
		}
		r.Log.Info("saved attachment", logger.Fields("path", path))
		saved = append(saved, path)
	}
	return saved, nil
}

func hostOnly(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
