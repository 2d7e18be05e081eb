package web

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Local AI Agent</title>
<style>
  body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
  #log { border: 1px solid #ccc; padding: 1rem; min-height: 16rem; white-space: pre-wrap; }
  .you { color: #222; }
  .ai { color: #06c; }
  .err { color: #c00; }
  form { display: flex; gap: .5rem; margin-top: 1rem; }
  input[type=text] { flex: 1; padding: .5rem; }
</style>
</head>
<body>
<h1>Local AI Agent</h1>
<p>Prefix with <code>task: summarize</code>, <code>task: draft email</code>, or <code>task: get weather</code> to run a task.</p>
<div id="log"></div>
<form id="form">
  <input type="text" id="text" placeholder="Type something..." autocomplete="off" autofocus>
  <label><input type="checkbox" id="speak"> speak reply</label>
  <button type="submit">Send</button>
</form>
<script>
const log = document.getElementById('log');
const form = document.getElementById('form');
const input = document.getElementById('text');
const speak = document.getElementById('speak');

function append(cls, prefix, text) {
  const line = document.createElement('div');
  line.className = cls;
  line.textContent = prefix + text;
  log.appendChild(line);
  log.scrollTop = log.scrollHeight;
}

form.addEventListener('submit', async (ev) => {
  ev.preventDefault();
  const text = input.value.trim();
  if (!text) return;
  append('you', 'You: ', text);
  input.value = '';
  try {
    const resp = await fetch('/api/query', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({text: text, speak: speak.checked}),
    });
    const data = await resp.json();
    if (data.error) {
      append('err', 'Error: ', data.error);
    } else {
      append('ai', 'AI: ', data.reply);
    }
    if (data.speech_error) {
      append('err', 'Speech: ', data.speech_error);
    }
  } catch (err) {
    append('err', 'Error: ', String(err));
  }
});
</script>
</body>
</html>
`
