package remote

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"sync"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/radovskyb/watcher"

	"github.com/nbforge/goremote/event"
)

// Interceptor is a session/token handler for local composite service
// development. It loads the current access token from a session file,
// reloads it whenever the file is rotated, and injects it into every
// request. This allows testing against a live remote server without manual
// token plumbing.
type Interceptor struct {
	sessionFile string
	accessToken string
	tokenType   string
	mutex       sync.Mutex // used for accessing the token in parallel
}

// NewInterceptor creates a watcher for the session token information
func NewInterceptor(sessionFile string) *Interceptor {

	i := &Interceptor{
		sessionFile: sessionFile,
	}
	i.loadToken()

	go i.watchSessionFile()
	return i
}

func (i *Interceptor) loadToken() {

	log.Println("Loading session file", i.sessionFile)
	sessionReader, err := os.Open(i.sessionFile)
	if err != nil {
		log.Error(err)
		return
	}
	defer sessionReader.Close()

	buf, err := ioutil.ReadAll(sessionReader)
	if err != nil {
		log.Error(err)
		return
	}

	var session struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	err = json.Unmarshal(buf, &session)
	if err != nil {
		log.Error("Cannot unmarshal session file:", err)
		return
	}
	if session.TokenType == "" {
		session.TokenType = "token"
	}

	i.mutex.Lock()
	i.accessToken = session.AccessToken
	i.tokenType = session.TokenType
	i.mutex.Unlock()

	i.logExpiry(session.AccessToken)
}

// logExpiry reports when the freshly loaded token will expire. The token is
// opaque to this layer; only when it happens to be a JWT can the expiry be
// read out (unverified, validation is the remote server's job).
func (i *Interceptor) logExpiry(token string) {

	claims := jwt.StandardClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, &claims); err != nil {
		return
	}
	if claims.ExpiresAt == 0 {
		return
	}
	t := time.Unix(claims.ExpiresAt, 0)
	log.WithFields(event.Fields{
		"sessionFile": i.sessionFile,
	}).Debugf("Session token expires in %v\n", t.Sub(time.Now()))
}

func (i *Interceptor) watchSessionFile() {

	watch := watcher.New()
	watch.FilterOps(watcher.Write)

	go func() {
		for {
			select {
			case <-watch.Event:
				log.Println("Session file got changed, reload token")
				i.loadToken()
			case err := <-watch.Error:
				if err == watcher.ErrWatchedFileDeleted {
					// Usually happens because the watcher looks for the file as the OS is updating it
					continue
				}
				log.Error("Session file cannot be loaded:", err)
			case <-watch.Closed:
				return
			}
		}
	}()

	if err := watch.Add(i.sessionFile); err != nil {
		log.Error(err)
	}

	if err := watch.Start(time.Second * 1); err != nil {
		log.Error(err)
	}
}

// Token returns the raw access token which is currently loaded
func (i *Interceptor) Token() string {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.accessToken
}

// AddToken adds the token to the request
func (i *Interceptor) AddToken(c *gin.Context) {

	i.mutex.Lock()
	token := i.tokenType + " " + i.accessToken
	c.Set("authorization", token)
	i.mutex.Unlock()
}
